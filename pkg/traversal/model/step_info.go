package model

// StepVariant tags the capability a step was wired with.
type StepVariant string

const (
	SourceStepVariant  StepVariant = "source"
	MapStepVariant     StepVariant = "map"
	FlatMapStepVariant StepVariant = "flatMap"
	FilterStepVariant  StepVariant = "filter"
	MarkerStepVariant  StepVariant = "marker"
)

// StepInfo describes one step of a traversal. It is the only view of a step
// that options (drawer, measure) ever see.
type StepInfo struct {
	Variant StepVariant
	Name    string
}

var (
	// StartInfo is the synthetic step placed before the source in the topology.
	StartInfo = &StepInfo{Name: "start"}
	// EndInfo is the synthetic step placed after the last step in the topology.
	EndInfo = &StepInfo{Name: "end"}
)
