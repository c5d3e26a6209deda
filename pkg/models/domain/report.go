package domain

import "time"

// RunReport summarizes a completed invocation for the entry point.
type RunReport struct {
	Source      string
	Records     int
	TotalActive int
	Attempted   int
	Delivered   int
	Failed      int
	Results     []DeliveryResult
	Elapsed     time.Duration
}
