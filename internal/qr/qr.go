// Package qr renders QR codes as inline SVG markup.
package qr

import (
	"fmt"
	"strconv"
	"strings"

	goqr "github.com/skip2/go-qrcode"
)

// Level is the error-correction level of a QR code.
type Level int

const (
	Low Level = iota
	Medium
	High
	Highest
)

func (l Level) recovery() goqr.RecoveryLevel {
	switch l {
	case Low:
		return goqr.Low
	case High:
		return goqr.High
	case Highest:
		return goqr.Highest
	default:
		return goqr.Medium
	}
}

// Options control how a QR code is rendered.
type Options struct {
	// Margin is the quiet zone around the code, in modules.
	Margin int
	// Width is the rendered width and height in pixels. Zero leaves the
	// size to the surrounding markup.
	Width int
	Level Level
}

// DefaultOptions are the options used for the contact page.
func DefaultOptions() Options {
	return Options{
		Margin: 1,
		Width:  260,
		Level:  Medium,
	}
}

// Encoder turns content into markup that can be embedded in an HTML page.
type Encoder func(content string, opts Options) (string, error)

// SVG is the default Encoder. It emits a single <svg> element with one path
// for the dark modules.
func SVG(content string, opts Options) (string, error) {
	code, err := goqr.New(content, opts.Level.recovery())
	if err != nil {
		return "", fmt.Errorf("failed to encode qr code: %w", err)
	}
	code.DisableBorder = true

	margin := opts.Margin
	if margin < 0 {
		margin = 0
	}

	bitmap := code.Bitmap()
	size := len(bitmap) + 2*margin
	dim := strconv.Itoa(size)

	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg"`)
	if opts.Width > 0 {
		w := strconv.Itoa(opts.Width)
		b.WriteString(` width="` + w + `" height="` + w + `"`)
	}
	b.WriteString(` viewBox="0 0 ` + dim + ` ` + dim + `" shape-rendering="crispEdges">`)
	b.WriteString(`<path fill="#ffffff" d="M0 0h` + dim + `v` + dim + `H0z"/>`)
	b.WriteString(`<path fill="#000000" d="`)
	writeModules(&b, bitmap, margin)
	b.WriteString(`"/></svg>`)

	return b.String(), nil
}

// writeModules writes one rectangle per horizontal run of dark modules.
func writeModules(b *strings.Builder, bitmap [][]bool, margin int) {
	for y, row := range bitmap {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] {
				x++
			}
			run := x - start
			fmt.Fprintf(b, "M%d %dh%dv1h-%dz", start+margin, y+margin, run, run)
		}
	}
}
