// Package gametime carries frame timing between the frame pump and the
// per-frame update and draw logic of game components.
package gametime

import "time"

// GameTime holds the total game time and the time elapsed since the
// previous frame, both in seconds. Neither field is validated; the frame
// pump is expected to accumulate them monotonically.
type GameTime struct {
	total   float64
	elapsed float64
}

// New returns a GameTime with the given total and elapsed seconds.
func New(total, elapsed float64) GameTime {
	return GameTime{total: total, elapsed: elapsed}
}

// TotalGameTime returns the seconds since the clock was started.
func (gt GameTime) TotalGameTime() float64 {
	return gt.total
}

// SetTotalGameTime replaces the total game time.
func (gt *GameTime) SetTotalGameTime(total float64) {
	gt.total = total
}

// ElapsedGameTime returns the seconds since the previous frame.
func (gt GameTime) ElapsedGameTime() float64 {
	return gt.elapsed
}

// SetElapsedGameTime replaces the frame delta.
func (gt *GameTime) SetElapsedGameTime(elapsed float64) {
	gt.elapsed = elapsed
}

// Elapsed is the frame delta as float32, the precision animation code
// scales its per-frame increments with.
func (gt GameTime) Elapsed() float32 {
	return float32(gt.elapsed)
}

// ElapsedDuration returns the frame delta as a time.Duration.
func (gt GameTime) ElapsedDuration() time.Duration {
	return time.Duration(gt.elapsed * float64(time.Second))
}

// TotalDuration returns the total game time as a time.Duration.
func (gt GameTime) TotalDuration() time.Duration {
	return time.Duration(gt.total * float64(time.Second))
}
