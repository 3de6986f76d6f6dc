// internal/logging/otel.go
package logging

import (
	"fmt"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/log"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newCore tees the enabled outputs: stdout, a rotated file and OTEL.
func newCore(cfg *Config, otelProvider log.LoggerProvider) (zapcore.Core, error) {
	cores := make([]zapcore.Core, 0, 3)

	if cfg.Output.Stdout {
		cores = append(cores, zapcore.NewCore(newEncoder(cfg.Format), zapcore.Lock(os.Stdout), cfg.Level))
	}

	if fc := cfg.Output.File; fc.Path != "" {
		// Files always get JSON so they stay machine readable.
		cores = append(cores, zapcore.NewCore(
			newEncoder("json"),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   fc.Path,
				MaxSize:    fc.MaxSizeMB,
				MaxBackups: fc.MaxBackups,
				MaxAge:     fc.MaxAgeDays,
				Compress:   fc.Compress,
			}),
			cfg.Level,
		))
	}

	if cfg.Output.OTEL && otelProvider != nil {
		cores = append(cores, otelzap.NewCore("zinspector",
			otelzap.WithLoggerProvider(otelProvider),
		))
	}

	if len(cores) == 0 {
		return nil, fmt.Errorf("at least one output must be enabled and available")
	}

	core := cores[0]
	if len(cores) > 1 {
		core = zapcore.NewTee(cores...)
	}
	return newSampledCore(core, cfg.Sampling), nil
}
