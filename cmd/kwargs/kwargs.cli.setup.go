package main

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/itsatony/go-kwargs"
)

// newLogger builds a console logger on stderr, or a no-op logger for "off"
func newLogger(level string, stderr io.Writer) (*zap.Logger, error) {
	if level == "" || level == LogLevelOff {
		return zap.NewNop(), nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(stderr), lvl)
	return zap.New(core), nil
}

// newEngine builds the engine, applying the YAML config at path if set
func newEngine(path string, logger *zap.Logger) (*kwargs.Engine, error) {
	opts := []kwargs.Option{kwargs.WithLogger(logger)}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, newCommandError(ExitCodeInputError, ErrMsgReadFileFailed, err)
		}
		cfg, err := kwargs.LoadConfig(data)
		if err != nil {
			return nil, newCommandError(ExitCodeInputError, ErrMsgInvalidConfig, err)
		}
		configured, err := cfg.Options()
		if err != nil {
			return nil, newCommandError(ExitCodeInputError, ErrMsgInvalidConfig, err)
		}
		opts = append(opts, configured...)
		logger.Debug(LogMsgCLIConfig, zap.String(LogFieldPath, path))
	}

	engine, err := kwargs.New(opts...)
	if err != nil {
		return nil, newCommandError(ExitCodeInputError, ErrMsgInvalidConfig, err)
	}
	return engine, nil
}
