package bloom_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Cronos87/pyside-docset-generator/bloom"
)

func TestFilter_AddAndSeen(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Seen("qobject.png"))

	f.Add("qobject.png")

	assert.True(t, f.Seen("qobject.png"))
	assert.False(t, f.Seen("signals.png"))
}

func TestFilter_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	f.Add("qobject.png")
	countAfterFirst := f.EstimatedCount()

	f.Add("qobject.png")
	f.Add("qobject.png")

	assert.Equal(t, countAfterFirst, f.EstimatedCount())
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.Equal(t, uint(0), f.EstimatedCount())

	for i := 0; i < 100; i++ {
		f.Add(fmt.Sprintf("image-%d.png", i))
	}

	assert.InDelta(t, 100, float64(f.EstimatedCount()), 10)
}
