package logger

import (
	"log/slog"
	"time"
)

// Error logs err under "error". Nil errors yield an empty attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Schema records a registry schema name.
func Schema(name string) slog.Attr {
	return slog.String("schema", name)
}

func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Violations records the violating field names of a failed validation.
// An empty list yields an empty attr.
func Violations(fields []string) slog.Attr {
	if len(fields) == 0 {
		return slog.Attr{}
	}
	return slog.Any("violations", fields)
}

func Store(kind string) slog.Attr {
	return slog.String("store", kind)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// RequestID records a request id. Empty ids yield an empty attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}
