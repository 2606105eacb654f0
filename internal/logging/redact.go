package logging

import (
	"log/slog"
	"strings"
)

const redactedValue = "***REDACTED***"

// Attribute keys containing any of these are never written in clear.
var sensitiveKeys = []string{
	"password",
	"secret",
	"token",
	"authorization",
	"hash",
}

func redact(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		if a.Value.String() == "" {
			return a
		}
		key := strings.ToLower(a.Key)
		for _, s := range sensitiveKeys {
			if strings.Contains(key, s) {
				return slog.String(a.Key, redactedValue)
			}
		}
	case slog.KindGroup:
		attrs := a.Value.Group()
		out := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			out[i] = redact(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
	}
	return a
}
