package qr

import (
	"fmt"
	"strings"
	"testing"

	goqr "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 1, opts.Margin)
	assert.Equal(t, 260, opts.Width)
	assert.Equal(t, Medium, opts.Level)
}

func TestSVG(t *testing.T) {
	content := "imessage:someone%40example.com?&body=hello"

	svg, err := SVG(content, DefaultOptions())
	require.NoError(t, err)

	code, err := goqr.New(content, goqr.Medium)
	require.NoError(t, err)
	code.DisableBorder = true
	size := len(code.Bitmap()) + 2

	assert.True(t, strings.HasPrefix(svg, "<svg "), "output should start with an svg element")
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, `width="260" height="260"`)
	assert.Contains(t, svg, fmt.Sprintf(`viewBox="0 0 %d %d"`, size, size))
	assert.Contains(t, svg, `<path fill="#000000" d="M`)
	assert.NotContains(t, svg, content, "content must not leak into the markup")
}

func TestSVGWithoutWidth(t *testing.T) {
	svg, err := SVG("hello", Options{Margin: 0, Level: Low})
	require.NoError(t, err)
	assert.NotContains(t, svg, "width=")
}

func TestSVGMarginOffsetsModules(t *testing.T) {
	noMargin, err := SVG("hello", Options{Margin: 0, Level: Medium})
	require.NoError(t, err)
	withMargin, err := SVG("hello", Options{Margin: 4, Level: Medium})
	require.NoError(t, err)

	// The finder pattern occupies the top-left corner.
	assert.Contains(t, noMargin, `d="M0 0h7v1h-7z`)
	assert.Contains(t, withMargin, `d="M4 4h7v1h-7z`)
}

func TestSVGContentTooLong(t *testing.T) {
	_, err := SVG(strings.Repeat("x", 8000), DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode qr code")
}

func TestLevelRecovery(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		want  goqr.RecoveryLevel
	}{
		{"low", Low, goqr.Low},
		{"medium", Medium, goqr.Medium},
		{"high", High, goqr.High},
		{"highest", Highest, goqr.Highest},
		{"unknown falls back to medium", Level(42), goqr.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.recovery())
		})
	}
}
