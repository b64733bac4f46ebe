package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		collides bool
		ox, oy   float64
	}{
		{"overlap", AABB{0, 0, 10, 10}, AABB{5, 6, 10, 10}, true, 5, 4},
		{"contained", AABB{0, 0, 10, 10}, AABB{2, 2, 3, 3}, true, 3, 3},
		{"touching edge", AABB{0, 0, 10, 10}, AABB{10, 0, 10, 10}, false, 0, 0},
		{"touching bottom", AABB{0, 0, 10, 10}, AABB{0, 10, 10, 10}, false, 0, 0},
		{"apart", AABB{0, 0, 1, 1}, AABB{5, 5, 1, 1}, false, 0, 0},
		{"zero width", AABB{0, 0, 0, 10}, AABB{0, 0, 10, 10}, false, 0, 0},
		{"negative height", AABB{0, 0, 10, 10}, AABB{1, 1, 5, -5}, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(tt.a, tt.b)
			assert.Equal(t, tt.collides, got.IsColliding)
			assert.Equal(t, tt.collides, Check(tt.b, tt.a).IsColliding, "symmetry")
			if tt.collides {
				assert.InDelta(t, tt.ox, got.OverlapX, 1e-9)
				assert.InDelta(t, tt.oy, got.OverlapY, 1e-9)
			}
		})
	}
}

func TestResolveVertical(t *testing.T) {
	ground := AABB{X: 0, Y: 100, Width: 200, Height: 32}

	tests := []struct {
		name     string
		moving   AABB
		velocity Vec
		want     Resolution
	}{
		{
			name:     "no collision",
			moving:   AABB{X: 10, Y: 10, Width: 32, Height: 32},
			velocity: Vec{Y: 50},
			want:     Resolution{Side: SideNone, Corrected: 10},
		},
		{
			name:     "falling onto ground",
			moving:   AABB{X: 10, Y: 80, Width: 32, Height: 32},
			velocity: Vec{Y: 120},
			want:     Resolution{Side: SideBottom, Corrected: 68, Stop: true},
		},
		{
			name:     "jumping into ceiling",
			moving:   AABB{X: 10, Y: 120, Width: 32, Height: 32},
			velocity: Vec{Y: -40},
			want:     Resolution{Side: SideTop, Corrected: 132, Stop: true},
		},
		{
			name:     "resting above center",
			moving:   AABB{X: 10, Y: 90, Width: 32, Height: 32},
			want:     Resolution{Side: SideBottom, Corrected: 68, Stop: true},
		},
		{
			name:     "resting below center",
			moving:   AABB{X: 10, Y: 110, Width: 32, Height: 32},
			want:     Resolution{Side: SideTop, Corrected: 132, Stop: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveVertical(tt.moving, ground, tt.velocity))
		})
	}
}

func TestResolveHorizontal(t *testing.T) {
	wall := AABB{X: 100, Y: 0, Width: 32, Height: 200}

	got := ResolveHorizontal(AABB{X: 80, Y: 10, Width: 32, Height: 32}, wall, Vec{X: 60})
	assert.Equal(t, Resolution{Side: SideRight, Corrected: 68, Stop: true}, got)

	got = ResolveHorizontal(AABB{X: 120, Y: 10, Width: 32, Height: 32}, wall, Vec{X: -60})
	assert.Equal(t, Resolution{Side: SideLeft, Corrected: 132, Stop: true}, got)
}
