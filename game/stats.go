package game

import "time"

// Stats provides statistics about frame execution.
type Stats struct {
	ComponentCount int
	Frames         int64
	Components     []ComponentStats
}

// ComponentStats provides update and draw timings for a single component.
type ComponentStats struct {
	Name   string
	Update Timing
	Draw   Timing
}

// Timing summarizes the durations of one kind of call.
type Timing struct {
	Count int64
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Last  time.Duration
	Total time.Duration
}

type timingInternal struct {
	count int64
	min   time.Duration
	max   time.Duration
	last  time.Duration
	total time.Duration
}

func newTimingInternal() timingInternal {
	return timingInternal{min: time.Duration(1<<63 - 1)}
}

func (t *timingInternal) record(d time.Duration) {
	t.count++
	t.last = d
	t.total += d

	if d < t.min {
		t.min = d
	}
	if d > t.max {
		t.max = d
	}
}

func (t *timingInternal) snapshot() Timing {
	timing := Timing{
		Count: t.count,
		Max:   t.max,
		Last:  t.last,
		Total: t.total,
	}
	if t.count > 0 {
		timing.Min = t.min
		timing.Avg = t.total / time.Duration(t.count)
	}
	return timing
}

type componentStatsInternal struct {
	name   string
	update timingInternal
	draw   timingInternal
}

// Stats returns statistics about component execution.
func (g *Game) Stats() *Stats {
	stats := &Stats{
		ComponentCount: len(g.components),
		Frames:         g.frames,
		Components:     make([]ComponentStats, len(g.stats)),
	}

	for i, internal := range g.stats {
		stats.Components[i] = ComponentStats{
			Name:   internal.name,
			Update: internal.update.snapshot(),
			Draw:   internal.draw.snapshot(),
		}
	}

	return stats
}
