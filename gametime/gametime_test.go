package gametime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGameTime(t *testing.T) {
	t.Run("zero value", func(t *testing.T) {
		var gt GameTime
		assert.Equal(t, 0.0, gt.TotalGameTime())
		assert.Equal(t, 0.0, gt.ElapsedGameTime())
	})

	t.Run("constructed values read back", func(t *testing.T) {
		gt := New(12.5, 0.016)
		assert.Equal(t, 12.5, gt.TotalGameTime())
		assert.Equal(t, 0.016, gt.ElapsedGameTime())
	})

	t.Run("setting total leaves elapsed alone", func(t *testing.T) {
		gt := New(1, 0.5)
		gt.SetTotalGameTime(42)
		assert.Equal(t, 42.0, gt.TotalGameTime())
		assert.Equal(t, 0.5, gt.ElapsedGameTime())
	})

	t.Run("setting elapsed leaves total alone", func(t *testing.T) {
		gt := New(1, 0.5)
		gt.SetElapsedGameTime(0.25)
		assert.Equal(t, 1.0, gt.TotalGameTime())
		assert.Equal(t, 0.25, gt.ElapsedGameTime())
	})

	t.Run("no ordering is enforced", func(t *testing.T) {
		gt := New(1, 5)
		assert.Equal(t, 1.0, gt.TotalGameTime())
		assert.Equal(t, 5.0, gt.ElapsedGameTime())
	})

	t.Run("duration helpers", func(t *testing.T) {
		gt := New(2, 0.5)
		assert.Equal(t, 2*time.Second, gt.TotalDuration())
		assert.Equal(t, 500*time.Millisecond, gt.ElapsedDuration())
		assert.Equal(t, float32(0.5), gt.Elapsed())
	})
}
