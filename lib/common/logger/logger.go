package logger

import (
	"github.com/bsthun/gut"
	"go.scnd.dev/open/syrup/posting/lib/common/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Init(lifecycle fx.Lifecycle, config *config.Config) *zap.Logger {
	level, err := zap.ParseAtomicLevel(*config.LogLevel)
	if err != nil {
		gut.Fatal("unable to parse log level", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.Encoding = "console"

	logger, err := cfg.Build()
	if err != nil {
		gut.Fatal("unable to build logger", err)
	}

	lifecycle.Append(fx.StopHook(func() {
		_ = logger.Sync()
	}))

	return logger
}
