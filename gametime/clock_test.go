package gametime_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/plus3/glsamples/gametime"
	"github.com/stretchr/testify/assert"
)

type manualTime struct {
	now time.Time
}

func (m *manualTime) Now() time.Time { return m.now }

func (m *manualTime) advance(d time.Duration) { m.now = m.now.Add(d) }

func TestClock(t *testing.T) {
	source := &manualTime{now: time.Unix(1000, 0)}
	clock := gametime.NewClock(source)

	var gt gametime.GameTime

	source.advance(100 * time.Millisecond)
	clock.UpdateGameTime(&gt)
	assert.InDelta(t, 0.1, gt.TotalGameTime(), 1e-9)
	assert.InDelta(t, 0.1, gt.ElapsedGameTime(), 1e-9)

	source.advance(250 * time.Millisecond)
	clock.UpdateGameTime(&gt)
	assert.InDelta(t, 0.35, gt.TotalGameTime(), 1e-9)
	assert.InDelta(t, 0.25, gt.ElapsedGameTime(), 1e-9)
	assert.Equal(t, source.now, clock.CurrentTime())

	t.Run("reset restarts total and delta", func(t *testing.T) {
		source.advance(time.Second)
		clock.Reset()
		assert.Equal(t, source.now, clock.StartTime())

		source.advance(20 * time.Millisecond)
		clock.UpdateGameTime(&gt)
		assert.InDelta(t, 0.02, gt.TotalGameTime(), 1e-9)
		assert.InDelta(t, 0.02, gt.ElapsedGameTime(), 1e-9)
	})

	t.Run("no time passing yields zero delta", func(t *testing.T) {
		clock.UpdateGameTime(&gt)
		assert.Equal(t, 0.0, gt.ElapsedGameTime())
	})
}

func TestNewClockDefaultsToSystemTime(t *testing.T) {
	clock := gametime.NewClock(nil)
	var gt gametime.GameTime
	clock.UpdateGameTime(&gt)
	assert.GreaterOrEqual(t, gt.TotalGameTime(), 0.0)
	assert.GreaterOrEqual(t, gt.ElapsedGameTime(), 0.0)
}

// ExampleClock shows a frame pump producing one GameTime per frame.
func ExampleClock() {
	source := &manualTime{now: time.Unix(0, 0)}
	clock := gametime.NewClock(source)

	var gt gametime.GameTime
	for range 3 {
		source.advance(500 * time.Millisecond)
		clock.UpdateGameTime(&gt)
		fmt.Printf("total=%.1f elapsed=%.1f\n", gt.TotalGameTime(), gt.ElapsedGameTime())
	}

	// Output:
	// total=0.5 elapsed=0.5
	// total=1.0 elapsed=0.5
	// total=1.5 elapsed=0.5
}
