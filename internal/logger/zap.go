package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

// defaultZapLevel defines the fallback log level when an unknown level string is provided.
const defaultZapLevel = zapcore.DebugLevel

// toZapLevel converts a textual level to zapcore.Level using known level constants.
func toZapLevel(levelStr string) zapcore.Level {
	switch levelStr {
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return defaultZapLevel
	}
}

// newEncoder picks the console or JSON encoder. Unknown names fall back to console.
func newEncoder(encoding string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder

	if encoding == JSONEncoding {
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.TimeKey = ""
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// newCore builds a zapcore.Core writing to w.
func newCore(level zapcore.Level, encoding string, w io.Writer) zapcore.Core {
	ws := zapcore.Lock(zapcore.AddSync(w)) // thread-safe writer
	return zapcore.NewCore(newEncoder(encoding), ws, zap.NewAtomicLevelAt(level))
}

// newZapLogger constructs a sugared zap logger with the provided level string.
func newZapLogger(levelStr, encoding string) *Logger {
	core := newCore(toZapLevel(levelStr), encoding, os.Stdout)
	return &Logger{
		SugaredLogger: zap.New(core).Sugar(),
	}
}

// NewWriter builds a logger that writes to w instead of stdout.
func NewWriter(w io.Writer, level, encoding string) *Logger {
	return &Logger{SugaredLogger: zap.New(newCore(toZapLevel(level), encoding, w)).Sugar()}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}
