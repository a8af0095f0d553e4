package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrProvider  = "provider"
	AttrOperation = "operation"
	AttrFacet     = "facet"
	AttrOutcome   = "outcome"
	AttrResult    = "result"
)
