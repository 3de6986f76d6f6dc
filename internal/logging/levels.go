// internal/logging/levels.go
package logging

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// TraceLevel sits one step below Debug. Chunk-by-chunk stream progress and
// registry slot churn log here; production configs leave it off.
const TraceLevel = zapcore.DebugLevel - 1

// LevelFromString parses a level name. It accepts every zap level plus
// "trace", in any case.
func LevelFromString(level string) (zapcore.Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "trace" {
		return TraceLevel, nil
	}
	l, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.InfoLevel, err
	}
	return l, nil
}
