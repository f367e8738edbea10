// Package logger provides structured logging utilities built on Go's standard
// slog package: a small logger factory with functional options and a set of
// nil-safe attribute helpers used across sigslot.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/sigslot/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("myapp"))
//
//	// Production: JSON format, info level, stdout
//	log := logger.New(logger.WithProduction("myapp"))
//
//	// Custom configuration
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "api")),
//		logger.WithOutput(os.Stderr),
//	)
//
// Hand the logger to a signal to trace connection changes:
//
//	sig := sigslot.New[int](sigslot.WithLogger(log))
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, which slog
// drops, so callers never need nil checks:
//
//	log.Debug("slot connected",
//		logger.Component("sigslot"),
//		logger.Action("connect"),
//		logger.ID("connection_id", id),
//		logger.Error(err), // dropped when err == nil
//	)
//
// # Testing with Custom Output
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
//	log.Info("Test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
//
// Use Discard for a logger that drops everything; it is the default for
// signals created without WithLogger.
package logger
