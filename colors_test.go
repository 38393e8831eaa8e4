package styler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsColorValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"hex with hash", "#ff0000", true},
		{"short hex with hash", "#f00", true},
		{"hex without hash", "ff0000", true},
		{"8 digit hex", "#ff0000cc", true},
		{"rgb function", "rgb(255, 0, 0)", true},
		{"rgba function", "rgba(255,0,0,0.5)", true},
		{"hsl function", "hsl(0, 100%, 50%)", true},
		{"hsla function", "hsla(0,100%,50%,.5)", true},
		{"named color", "tomato", true},
		{"transparent", "transparent", true},
		{"currentcolor", "currentColor", true},
		{"uppercase hex", "#FF0000", true},
		{"bare number", "100", false},
		{"number with unit", "1.5rem", false},
		{"pixel value", "24px", false},
		{"percentage", "50%", false},
		{"keyword size", "auto", false},
		{"empty", "", false},
		{"random word", "banana", false},
		{"url", "url(/a.png)", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsColorValue(tt.value), "IsColorValue(%q)", tt.value)
		})
	}
}

func TestIsImageValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"url function", "url(https://cdn.test/a.png)", true},
		{"relative url function", "url(/assets/a.png)", true},
		{"absolute http", "http://cdn.test/a.png", true},
		{"absolute https", "https://cdn.test/a.png", true},
		{"data uri", "data:image/png;base64,AAAA", true},
		{"linear gradient", "linear-gradient(to right, #fff, #000)", true},
		{"radial gradient", "radial-gradient(circle, red, blue)", true},
		{"conic gradient", "conic-gradient(from 0deg, red, blue)", true},
		{"color is never an image", "#ff0000", false},
		{"named color", "red", false},
		{"size", "100px", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsImageValue(tt.value), "IsImageValue(%q)", tt.value)
		})
	}
}

func TestIsColorValueIsTotal(t *testing.T) {
	// Arbitrary bracket content from external markup must never panic.
	for _, v := range []string{"((", "]]", "url(", "#", "rgb(", "  ", "\t", "🎨"} {
		require.NotPanics(t, func() { IsColorValue(v) })
		require.NotPanics(t, func() { IsImageValue(v) })
	}
}
