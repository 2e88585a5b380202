package qrimage

import (
	"errors"
	"fmt"
	"strings"

	"rsc.io/qr"
)

// quietZone is the border width in modules required around a QR symbol.
const quietZone = 4

// SVG produces a self-contained SVG with a white background and black modules.
func (r *Renderer) SVG(content string, size int) ([]byte, error) {
	if size < MinSize || size > MaxSize {
		return nil, ErrInvalidSize
	}

	code, err := qr.Encode(content, r.level.svgLevel())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentTooLong, err)
	}

	n := code.Size
	if n == 0 {
		return nil, errors.New("empty qr code")
	}
	total := n + 2*quietZone

	var sb strings.Builder
	fmt.Fprintf(&sb,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d" shape-rendering="crispEdges">`,
		total, total, size, size,
	)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="#fff"/>`, total, total)

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if code.Black(x, y) {
				fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="1" height="1" fill="#000"/>`, x+quietZone, y+quietZone)
			}
		}
	}

	sb.WriteString(`</svg>`)
	return []byte(sb.String()), nil
}
