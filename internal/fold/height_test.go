package fold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeightAt(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		progress float64
		want     int
	}{
		{"start", 50, 100, 0, 50},
		{"quarter", 50, 100, 0.25, 62},
		{"half", 50, 100, 0.5, 75},
		{"end", 50, 100, 1, 100},
		{"shrinking half", 180, 150, 0.5, 165},
		{"shrinking end", 180, 150, 1, 150},
		{"past end clamps", 50, 100, 1.5, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HeightAt(tt.from, tt.to, tt.progress))
		})
	}
}

func TestHeightAt_EndIsExact(t *testing.T) {
	for from := -7; from < 500; from += 13 {
		for to := -3; to < 500; to += 17 {
			assert.Equal(t, to, HeightAt(from, to, 1.0))
		}
	}
}

func TestInterpolators(t *testing.T) {
	assert.Equal(t, 0.0, Decelerate(0))
	assert.Equal(t, 1.0, Decelerate(1))
	assert.InDelta(t, 0.75, Decelerate(0.5), 1e-12)
	assert.Greater(t, Decelerate(0.3), Linear(0.3), "decelerate runs ahead of linear")
	assert.Equal(t, 0.3, Linear(0.3))
}
