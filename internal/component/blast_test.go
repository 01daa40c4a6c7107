package component

import (
	"go-missile-defense/internal/utils"
	"testing"
)

func TestBlastGrowThenShrink(t *testing.T) {
	tests := []struct {
		name      string
		maxRadius float64
		growth    float64
	}{
		{"even steps", 50, 1},
		{"uneven steps", 30, 1.5},
		{"overshoot", 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBlast(1, utils.Point{X: 10, Y: 10}, tt.maxRadius, tt.growth)
			flipped := false
			peak := 0.0
			for frame := 0; frame < 10000; frame++ {
				done := b.Advance()
				if b.Radius < 0 {
					t.Fatalf("frame %d: negative radius %v", frame, b.Radius)
				}
				if b.Radius > tt.maxRadius {
					t.Fatalf("frame %d: radius %v above max", frame, b.Radius)
				}
				if b.Radius > peak {
					peak = b.Radius
				}
				if flipped && b.Dir > 0 {
					t.Fatalf("frame %d: direction flipped back to growth", frame)
				}
				if b.Dir < 0 {
					flipped = true
				}
				if done {
					if b.Radius != 0 {
						t.Errorf("finished with radius %v", b.Radius)
					}
					if peak != tt.maxRadius {
						t.Errorf("peak %v, want %v", peak, tt.maxRadius)
					}
					return
				}
			}
			t.Fatal("blast never finished")
		})
	}
}

func TestBlastCenterIsFixed(t *testing.T) {
	center := utils.Point{X: 300, Y: 150}
	b := NewBlast(7, center, 20, 2)
	for !b.Advance() {
		if b.Center != center {
			t.Fatalf("center moved to %+v", b.Center)
		}
	}
}
