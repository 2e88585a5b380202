package qrimage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
	"rsc.io/qr"
)

const (
	MinSize = 128
	MaxSize = 2048
)

var (
	ErrInvalidSize    = errors.New("invalid size: must be between 128 and 2048")
	ErrInvalidFormat  = errors.New("invalid format: must be png or svg")
	ErrInvalidLevel   = errors.New("invalid recovery level")
	ErrContentTooLong = errors.New("content too long to encode as a QR code")
)

type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	}
	return "", ErrInvalidFormat
}

func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Level is the error correction level, named the way the config file names it.
type Level string

const (
	LevelLow     Level = "low"
	LevelMedium  Level = "medium"
	LevelHigh    Level = "high"
	LevelHighest Level = "highest"
)

func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToLower(s)); l {
	case LevelLow, LevelMedium, LevelHigh, LevelHighest:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

func (l Level) pngLevel() qrcode.RecoveryLevel {
	switch l {
	case LevelMedium:
		return qrcode.Medium
	case LevelHigh:
		return qrcode.High
	case LevelHighest:
		return qrcode.Highest
	}
	return qrcode.Low
}

func (l Level) svgLevel() qr.Level {
	switch l {
	case LevelMedium:
		return qr.M
	case LevelHigh:
		return qr.Q
	case LevelHighest:
		return qr.H
	}
	return qr.L
}

// Renderer turns a link into an image. It never looks inside the content.
type Renderer struct {
	level Level
	cache *Cache
}

// NewRenderer returns a renderer. cache may be nil to disable memoization.
func NewRenderer(level Level, cache *Cache) *Renderer {
	return &Renderer{level: level, cache: cache}
}

func (r *Renderer) Render(content string, size int, format Format) ([]byte, error) {
	if size < MinSize || size > MaxSize {
		return nil, ErrInvalidSize
	}

	key := cacheKey{format: format, level: r.level, size: size, content: content}
	if r.cache != nil {
		if b, ok := r.cache.Get(key); ok {
			return b, nil
		}
	}

	var (
		b   []byte
		err error
	)
	switch format {
	case FormatPNG:
		b, err = r.PNG(content, size)
	case FormatSVG:
		b, err = r.SVG(content, size)
	default:
		return nil, ErrInvalidFormat
	}
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		r.cache.Set(key, b)
	}
	return b, nil
}

func (r *Renderer) PNG(content string, size int) ([]byte, error) {
	if size < MinSize || size > MaxSize {
		return nil, ErrInvalidSize
	}

	code, err := qrcode.New(content, r.level.pngLevel())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentTooLong, err)
	}

	// Keep the quiet zone so phone cameras can lock on.
	code.DisableBorder = false

	return code.PNG(size)
}
