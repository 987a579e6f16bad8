package math2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2_DistanceTo(t *testing.T) {
	tests := []struct {
		a, b     Vector2
		expected float64
	}{
		{Vector2{0, 0}, Vector2{3, 4}, 5},
		{Vector2{1, 1}, Vector2{1, 1}, 0},
		{Vector2{-2, 0}, Vector2{2, 0}, 4},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.expected, tt.a.DistanceTo(&tt.b), 1e-9)
	}
}

func TestVector2_InTriangle(t *testing.T) {
	p0 := Vector2{0, 0}
	p1 := Vector2{4, 0}
	p2 := Vector2{0, 4}

	inside := Vector2{1, 1}
	outside := Vector2{3, 3}

	assert.True(t, inside.InTriangle(&p0, &p1, &p2))
	assert.False(t, outside.InTriangle(&p0, &p1, &p2))
}
