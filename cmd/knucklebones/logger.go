package main

import (
	"github.com/kiryu-dev/knucklebones/internal/config"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, errors.WithMessage(err, "parse log level")
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = level
	zapCfg.OutputPaths = []string{cfg.Output}
	zapCfg.ErrorOutputPaths = []string{cfg.Output}
	logger, err := zapCfg.Build()
	if err != nil {
		return nil, errors.WithMessage(err, "build logger")
	}
	return logger, nil
}
