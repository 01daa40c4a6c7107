package render

import (
	"errors"
	"math/rand"
	"testing"
)

func TestParseRGBA(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RGBA
		wantErr bool
	}{
		{"rgba", "rgba(10,20,30,0.5)", RGBA{10, 20, 30, 0.5}, false},
		{"rgb", "rgb(255, 0, 7)", RGBA{255, 0, 7, 1}, false},
		{"spaces", "  rgba( 1, 2, 3, 1.0 ) ", RGBA{1, 2, 3, 1}, false},
		{"channel out of range", "rgb(256,0,0)", RGBA{}, true},
		{"alpha out of range", "rgba(1,2,3,1.5)", RGBA{}, true},
		{"wrong arity", "rgba(1,2,3)", RGBA{}, true},
		{"hex", "#ff00ff", RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRGBA(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedColor) {
					t.Fatalf("expected ErrMalformedColor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFadeDecaysMultiplicatively(t *testing.T) {
	c := RGBA{R: 200, G: 100, B: 50, A: 1}
	faded := c.Fade()
	if faded.A != 0.985 {
		t.Fatalf("expected alpha 0.985, got %v", faded.A)
	}
	if faded.R != c.R || faded.G != c.G || faded.B != c.B {
		t.Errorf("fade must not touch channels: %+v", faded)
	}

	prev := faded.A
	for i := 0; i < 500; i++ {
		faded = faded.Fade()
		if faded.A < 0 {
			t.Fatalf("alpha went negative at frame %d", i)
		}
		if faded.A > prev {
			t.Fatalf("alpha increased at frame %d: %v > %v", i, faded.A, prev)
		}
		prev = faded.A
	}
}

func TestFadeColorString(t *testing.T) {
	if got := FadeColorString("rgba(1,2,3,1.0)"); got != "rgba(1,2,3,0.985)" {
		t.Errorf("got %q", got)
	}

	// Нет альфы — строка не меняется.
	for _, in := range []string{"rgb(1,2,3)", "red", "", "rgba(1,2,3,1)"} {
		if got := FadeColorString(in); got != in {
			t.Errorf("FadeColorString(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestRGBATextRoundTrip(t *testing.T) {
	var c RGBA
	if err := c.UnmarshalText([]byte("rgba(9,8,7,0.25)")); err != nil {
		t.Fatal(err)
	}
	if c.String() != "rgba(9,8,7,0.25)" {
		t.Errorf("String() = %q", c.String())
	}
}

func TestNRGBAClampsAlpha(t *testing.T) {
	if a := (RGBA{A: -0.2}).NRGBA().A; a != 0 {
		t.Errorf("negative alpha should clamp to 0, got %d", a)
	}
	if a := (RGBA{A: 3}).NRGBA().A; a != 255 {
		t.Errorf("alpha > 1 should clamp to 255, got %d", a)
	}
}

func TestRandomRGBAIsOpaque(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		if c := RandomRGBA(rng); c.A != 1 {
			t.Fatalf("expected opaque color, got %+v", c)
		}
	}
}
