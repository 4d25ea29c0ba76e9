package measure

import "time"

// Measure collects one Metric per step of a traversal.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric accumulates the timings of a single step.
type Metric interface {
	// AddDuration records one transform execution.
	AddDuration(elapsed time.Duration)
	// AddPullDuration records the time spent pulling from the named upstream
	// step before the transform ran.
	AddPullDuration(inputStepName string, elapsed time.Duration)
	// Emitted returns the number of traversers the step emitted.
	Emitted() int64
	AVGDuration() time.Duration
	AVGPullDuration() map[string]*PullInfo
	SetTotalDuration(endDuration time.Duration)
	GetTotalDuration() time.Duration
	AllPulls() map[string]*PullInfo
}
