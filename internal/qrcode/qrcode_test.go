package qrcode

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/config"
)

func TestNewGeneratorNormalizesSize(t *testing.T) {
	if got := NewGenerator(0).Size(); got != 256 {
		t.Fatalf("expected default size 256, got %d", got)
	}
	if got := NewGenerator(-5).Size(); got != 256 {
		t.Fatalf("expected default size 256, got %d", got)
	}
	if got := NewGenerator(128).Size(); got != 128 {
		t.Fatalf("expected size 128, got %d", got)
	}
}

func TestRenderProducesPNG(t *testing.T) {
	gen := NewGenerator(128)
	data, err := gen.Render("b5c7a8e2-1111-2222-3333-444455556666")
	if err != nil {
		t.Fatalf("render returned error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("expected decodable PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 128 || bounds.Dy() != 128 {
		t.Fatalf("unexpected image bounds: %v", bounds)
	}
}

func TestRenderEmptyContent(t *testing.T) {
	if _, err := NewGenerator(64).Render(""); !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}

func TestModuleGeneratorUsesConfigSize(t *testing.T) {
	gen := newGenerator(generatorParams{Config: &config.Config{QRCodeSize: 512}})
	if gen.Size() != 512 {
		t.Fatalf("expected size 512, got %d", gen.Size())
	}
}
