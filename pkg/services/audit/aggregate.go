package audit

import (
	"fmt"

	"github.com/de-tools/vmwatch/pkg/models/domain"
)

// Aggregate totals active VM counts and renders one report line per record
// that has any. Input order is preserved in the output.
func Aggregate(records []domain.InventoryRecord) domain.AuditResult {
	result := domain.AuditResult{}
	for _, rec := range records {
		result.TotalActive += rec.ActiveVMs
		if rec.ActiveVMs > 0 {
			result.Messages = append(result.Messages,
				fmt.Sprintf("Lab: %s, Owner: %s, VMs: %d", rec.Name, rec.Owner, rec.ActiveVMs))
		}
	}

	return result
}
