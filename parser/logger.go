package parser

import "log/slog"

// Logger receives structured diagnostics from ingestion and conversion.
//
// Attributes alternate keys and values as in log/slog:
//
//	logger.Debug("hoisted anonymous element", "owner", "broker", "name", "systemUsage")
//
// Wrap a *slog.Logger with [NewSlogAdapter]:
//
//	logger := parser.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, nil)))
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("activemq.xsd"),
//	    parser.WithLogger(logger),
//	)
//
// Other logging libraries need a small adapter. The xsdmodel command wraps a
// *zap.SugaredLogger, forwarding each method to its Debugw, Infow, Warnw and
// Errorw counterpart.
type Logger interface {
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)

	// With returns a Logger that prepends attrs to every record.
	With(attrs ...any) Logger
}

// NopLogger discards everything. It is the default.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}

// With implements Logger.
func (n NopLogger) With(...any) Logger { return n }

var _ Logger = NopLogger{}

// SlogAdapter implements Logger on top of a *slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger, or slog.Default() when logger is nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }
func (s *SlogAdapter) Info(msg string, attrs ...any)  { s.logger.Info(msg, attrs...) }
func (s *SlogAdapter) Warn(msg string, attrs ...any)  { s.logger.Warn(msg, attrs...) }
func (s *SlogAdapter) Error(msg string, attrs ...any) { s.logger.Error(msg, attrs...) }

// With implements Logger.
func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)
