package vterm

import "github.com/rs/zerolog"

// ZerologAdapter adapts a zerolog.Logger to LoggerProvider, the engine's
// minimal diagnostic-logging seam (SPEC_FULL §1 Ambient stack: logging is
// opt-in and never required for correctness, since the engine performs no
// I/O and owns no threads).
type ZerologAdapter struct {
	Logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger for use with WithLogger.
func NewZerologAdapter(l zerolog.Logger) ZerologAdapter { return ZerologAdapter{Logger: l} }

// Debug implements LoggerProvider, fanning kv pairs into zerolog's
// structured event fields.
func (z ZerologAdapter) Debug(msg string, kv ...any) {
	ev := z.Logger.Debug()
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, kv[i+1])
	}
	ev.Msg(msg)
}
