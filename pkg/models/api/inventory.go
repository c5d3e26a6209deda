package api

// Deployment is the nested deployment object an inventory entry may carry.
type Deployment struct {
	Name           string `json:"name"`
	Owner          string `json:"owner"`
	TotalActiveVMs int    `json:"totalActiveVms"`
}

// InventoryEntry is one element of the inventory API response array.
// Entries without a deployment are a normal inventory state (for example a
// template with no running VMs) and carry no countable records.
type InventoryEntry struct {
	Name       string      `json:"name"`
	Deployment *Deployment `json:"deployment"`
}
