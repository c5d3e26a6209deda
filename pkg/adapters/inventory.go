package adapters

import (
	"github.com/de-tools/vmwatch/pkg/models/api"
	"github.com/de-tools/vmwatch/pkg/models/domain"
)

// MapInventoryEntryApiToDomain converts one response element into an
// InventoryRecord. Entries without a deployment sub-object are not records;
// the second return is false and the caller skips them.
func MapInventoryEntryApiToDomain(e api.InventoryEntry) (domain.InventoryRecord, bool) {
	if e.Deployment == nil {
		return domain.InventoryRecord{}, false
	}
	return domain.InventoryRecord{
		Name:      e.Deployment.Name,
		Owner:     e.Deployment.Owner,
		ActiveVMs: e.Deployment.TotalActiveVMs,
	}, true
}

// MapInventoryEntriesApiToDomain converts a full response array, preserving
// response order and dropping entries without deployments.
func MapInventoryEntriesApiToDomain(entries []api.InventoryEntry) []domain.InventoryRecord {
	records := make([]domain.InventoryRecord, 0, len(entries))
	for _, e := range entries {
		if record, ok := MapInventoryEntryApiToDomain(e); ok {
			records = append(records, record)
		}
	}
	return records
}
