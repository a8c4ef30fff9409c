package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Overlaps(t *testing.T) {
	base := NewRect(0, 0, 10, 10)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"inside", NewRect(2, 2, 3, 3), true},
		{"partial", NewRect(5, 5, 10, 10), true},
		{"touching right edge", NewRect(10, 0, 5, 5), false},
		{"touching bottom edge", NewRect(0, 10, 5, 5), false},
		{"far away", NewRect(100, 100, 5, 5), false},
		{"zero width", NewRect(2, 2, 0, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestRect_Edges(t *testing.T) {
	r := NewRect(4, 6, 10, 20)
	assert.Equal(t, 14.0, r.Right())
	assert.Equal(t, 26.0, r.Bottom())
	assert.Equal(t, 9.0, r.CenterX())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 5))
	assert.Equal(t, 5.0, Clamp(9, 0, 5))
	assert.Equal(t, 2.5, Clamp(2.5, 0, 5))
	assert.Equal(t, 0, ClampInt(-1, 0, 100))
	assert.Equal(t, 100, ClampInt(120, 0, 100))
	assert.InDelta(t, 9.0, Lerp(0, 90, 0.1), 1e-9)
}
