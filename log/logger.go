package log

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger leveled structured logger, key value pairs follow the message
type Logger struct {
	zap   *zap.SugaredLogger
	level zap.AtomicLevel
}

type Config struct {
	Level  string
	Format string //console or json
}

var (
	mu  sync.RWMutex
	std = Nop()
)

func parseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zap.DebugLevel, nil
	case "", "info":
		return zap.InfoLevel, nil
	case "warn", "warning":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("invalid log level %q", level)
	}
}

func New(cfg Config) (*Logger, error) {
	lvl, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	atomicLevel := zap.NewAtomicLevelAt(lvl)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}
	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), atomicLevel)
	// skip one frame so the caller is the code using the logger
	z := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	return &Logger{zap: z.Sugar(), level: atomicLevel}, nil
}

// Nop discards everything, used before Init and in tests
func Nop() *Logger {
	return &Logger{zap: zap.NewNop().Sugar(), level: zap.NewAtomicLevel()}
}

// Init builds the process logger returned by Default
func Init(cfg Config) (*Logger, error) {
	l, err := New(cfg)
	if err != nil {
		return nil, err
	}
	mu.Lock()
	std = l
	mu.Unlock()
	return l, nil
}

func Default() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return std
}

// With returns a child logger carrying the given key value pairs
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{zap: l.zap.With(keysAndValues...), level: l.level}
}

func (l *Logger) SetLevel(level string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	l.level.SetLevel(lvl)
	return nil
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.zap.Debugw(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.zap.Infow(msg, keysAndValues...)
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.zap.Warnw(msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.zap.Errorw(msg, keysAndValues...)
}

func (l *Logger) Infof(format string, a ...interface{}) {
	l.zap.Infof(format, a...)
}

func (l *Logger) Errorf(format string, a ...interface{}) {
	l.zap.Errorf(format, a...)
}

// Sync flushes buffered entries, call before exit
func (l *Logger) Sync() error {
	return l.zap.Sync()
}

func Info(msg string, keysAndValues ...interface{}) {
	Default().zap.Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...interface{}) {
	Default().zap.Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...interface{}) {
	Default().zap.Errorw(msg, keysAndValues...)
}

func Infof(format string, a ...interface{}) {
	Default().zap.Infof(format, a...)
}

func Errorf(format string, a ...interface{}) {
	Default().zap.Errorf(format, a...)
}
