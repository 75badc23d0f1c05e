package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/erraggy/xsdmodel/parser"
)

// zapLogger adapts a sugared zap logger to parser.Logger.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (z zapLogger) Debug(msg string, attrs ...any) { z.s.Debugw(msg, attrs...) }
func (z zapLogger) Info(msg string, attrs ...any)  { z.s.Infow(msg, attrs...) }
func (z zapLogger) Warn(msg string, attrs ...any)  { z.s.Warnw(msg, attrs...) }
func (z zapLogger) Error(msg string, attrs ...any) { z.s.Errorw(msg, attrs...) }

func (z zapLogger) With(attrs ...any) parser.Logger {
	return zapLogger{s: z.s.With(attrs...)}
}

var _ parser.Logger = zapLogger{}

// newZapLogger builds a console logger writing to w. Only warnings and
// errors are shown unless debug is set.
func newZapLogger(w io.Writer, debug bool) *zap.Logger {
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "logger",
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	})
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core).Named("xsdmodel")
}
