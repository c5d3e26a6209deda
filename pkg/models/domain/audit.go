package domain

// AuditResult is the reduction of one inventory snapshot: a rendered line
// per deployment with active VMs, and the grand total across all records.
// Derived per invocation and discarded after use.
type AuditResult struct {
	Messages    []string
	TotalActive int
}

// DeliveryResult records the outcome of a single notification send.
type DeliveryResult struct {
	Text string
	Err  error
}

func (r DeliveryResult) Delivered() bool { return r.Err == nil }
