package measure

import (
	"sync"
	"time"
)

// PullInfo accumulates the time spent pulling from one upstream step.
type PullInfo struct {
	Elapsed time.Duration
	total   int64
}

type DefaultMetric struct {
	allPulls    map[string]*PullInfo
	mu          *sync.Mutex
	EndDuration time.Duration
	stepElapsed time.Duration
	total       int64
}

func (mt *DefaultMetric) AddDuration(elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.total++
	mt.stepElapsed += elapsed
}

func (mt *DefaultMetric) Emitted() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.total
}

func (mt *DefaultMetric) SetTotalDuration(endDuration time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.EndDuration = endDuration
}

func (mt *DefaultMetric) GetTotalDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.EndDuration
}

func (mt *DefaultMetric) AddPullDuration(inputStepName string, elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.allPulls[inputStepName] == nil {
		mt.allPulls[inputStepName] = &PullInfo{}
	}
	info := mt.allPulls[inputStepName]
	info.Elapsed += elapsed
	info.total++
}

func (mt *DefaultMetric) AVGDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.total == 0 {
		return time.Duration(0)
	}

	return round(time.Duration(float64(mt.stepElapsed) / float64(mt.total)))
}

func (mt *DefaultMetric) AVGPullDuration() map[string]*PullInfo {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	for name, info := range mt.allPulls {
		if info.Elapsed == 0 {
			continue
		}
		mt.allPulls[name].Elapsed = round(time.Duration(float64(info.Elapsed) / float64(info.total)))
	}

	return mt.allPulls
}

func (mt *DefaultMetric) AllPulls() map[string]*PullInfo {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.allPulls
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Second:
		d = d.Round(time.Second)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond)
	case d > time.Minute:
		d = d.Round(time.Minute)
	case d > time.Hour:
		d = d.Round(time.Hour)
	}

	return d
}
