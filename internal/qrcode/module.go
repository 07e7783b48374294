package qrcode

import (
	"go.uber.org/fx"

	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/config"
)

// Module provides the loyalty card PNG generator.
var Module = fx.Provide(newGenerator)

type generatorParams struct {
	fx.In

	Config *config.Config
}

func newGenerator(p generatorParams) *Generator {
	return NewGenerator(p.Config.QRCodeSize)
}
