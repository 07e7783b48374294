package qrcode

import (
	"errors"
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

var ErrEmptyContent = errors.New("empty qr content")

// Generator renders loyalty codes as scannable PNG images.
type Generator struct {
	size int
}

// NewGenerator creates a Generator producing square PNGs of the given pixel size.
func NewGenerator(size int) *Generator {
	if size <= 0 {
		size = 256
	}
	return &Generator{size: size}
}

// Render encodes the raw loyalty code string into a PNG. The scanning widget
// reads the string back verbatim, so no envelope format is applied.
func (g *Generator) Render(content string) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	png, err := qr.Encode(content, qr.Medium, g.size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

// Size reports the configured PNG edge length in pixels.
func (g *Generator) Size() int {
	return g.size
}
