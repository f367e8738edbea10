package logger

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// slog drops empty attributes, so log.Debug("msg", logger.Error(err)) is safe
// without an explicit nil check.

// ============================================================================
// Error Handling
// ============================================================================

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Panic records a recovered panic value under the key "panic".
func Panic(v any) slog.Attr {
	if v == nil {
		return slog.Attr{}
	}
	return slog.String("panic", fmt.Sprint(v))
}

// ============================================================================
// Signal Metadata
// ============================================================================

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Action creates an attribute for the operation being logged (connect, emit, ...).
func Action(action string) slog.Attr {
	return slog.String("action", action)
}

// Policy creates an attribute for the lock policy in use.
func Policy(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("policy", name)
}

// ID creates an identifier attribute with a custom key. Returns empty Attr for
// nil values and for fmt.Stringer values that render empty.
func ID(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	if s, ok := value.(fmt.Stringer); ok {
		if str := s.String(); str != "" {
			return slog.String(key, str)
		}
		return slog.Attr{}
	}
	return slog.Any(key, value)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// ============================================================================
// Debugging
// ============================================================================

// Stack captures the current goroutine's stack trace.
func Stack() slog.Attr {
	const size = 64 << 10
	buf := make([]byte, size)
	buf = buf[:runtime.Stack(buf, false)]
	return slog.String("stack", string(buf))
}
