package domain

// InventoryRecord is one deployment entry from the remote inventory:
// a named group of virtual machines, its owner, and how many of its VMs
// are currently active.
type InventoryRecord struct {
	Name      string
	Owner     string
	ActiveVMs int
}
