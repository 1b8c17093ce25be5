package render

import (
	"image/color"
	"testing"
)

func TestBlendModes(t *testing.T) {
	dst := RGB{100, 100, 100}
	src := RGB{200, 50, 0}

	tests := []struct {
		name  string
		mode  BlendMode
		alpha float64
		want  RGB
	}{
		{"Replace ignores alpha", BlendReplace, 0.3, src},
		{"Alpha half", BlendAlpha, 0.5, RGB{150, 75, 50}},
		{"Alpha zero keeps dst", BlendAlpha, 0, dst},
		{"Add saturates", BlendAdd, 1, RGB{255, 150, 100}},
		{"Max per channel", BlendMax, 1, RGB{200, 100, 100}},
		{"Max zero alpha", BlendMax, 0, dst},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.apply(dst, src, tt.alpha); got != tt.want {
				t.Errorf("apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScreenLightens(t *testing.T) {
	dst := RGB{80, 120, 10}
	src := RGB{60, 60, 60}
	got := Screen(dst, src, 1)
	if got.R < dst.R || got.G < dst.G || got.B < dst.B {
		t.Errorf("Screen darkened: %v -> %v", dst, got)
	}
	if white := Screen(dst, RGBWhite, 1); white != RGBWhite {
		t.Errorf("Screen with white should be white, got %v", white)
	}
	if same := Screen(dst, RGBBlack, 1); same != dst {
		t.Errorf("Screen with black should be identity, got %v", same)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a, b := RGB{10, 20, 30}, RGB{210, 220, 230}
	if Lerp(a, b, -1) != a || Lerp(a, b, 0) != a {
		t.Error("Lerp t<=0 should return a")
	}
	if Lerp(a, b, 1) != b || Lerp(a, b, 2) != b {
		t.Error("Lerp t>=1 should return b")
	}
	if mid := Lerp(a, b, 0.5); mid != (RGB{110, 120, 130}) {
		t.Errorf("Lerp midpoint = %v", mid)
	}
}

func TestScaleAndShadeSaturate(t *testing.T) {
	if got := Scale(RGB{200, 100, 0}, 2); got != (RGB{255, 200, 0}) {
		t.Errorf("Scale = %v", got)
	}
	if got := Shade(-5, 128.9, 999); got != (RGB{0, 128, 255}) {
		t.Errorf("Shade = %v", got)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.RGBA{R: 12, G: 34, B: 56, A: 255})
	if got != (RGB{12, 34, 56}) {
		t.Errorf("FromColor = %v", got)
	}
}

func TestGrayscale(t *testing.T) {
	g := Grayscale(RGB{255, 0, 0})
	if g.R != g.G || g.G != g.B || g.R != 76 {
		t.Errorf("Grayscale red = %v", g)
	}
}
