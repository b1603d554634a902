package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerElapsed(t *testing.T) {
	timer := NewTimer()
	time.Sleep(5 * time.Millisecond)

	first := timer.Elapsed()
	assert.GreaterOrEqual(t, first, 5*time.Millisecond)

	// Elapsed keeps growing until a reset.
	time.Sleep(time.Millisecond)
	assert.Greater(t, timer.Elapsed(), first)

	timer.Reset()
	assert.Less(t, timer.Elapsed(), first)
}
