package fxo

import (
	"time"

	"go.uber.org/fx"
)

// Option bounds shutdown so that a long index run can close its mappers.
func Option() fx.Option {
	return fx.Options(
		fx.StopTimeout(10*time.Minute),
		fx.NopLogger,
	)
}
