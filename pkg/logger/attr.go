package logger

import (
	"log/slog"
	"strconv"
)

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error", or returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// PatternName records a catalog entry name under the key "pattern_name".
func PatternName(name string) slog.Attr {
	return slog.String("pattern_name", name)
}

// Pattern records the printed form of a rule under the key "pattern".
func Pattern(literal string) slog.Attr {
	return slog.String("pattern", literal)
}

func Engine(name string) slog.Attr {
	return slog.String("engine", name)
}

func Source(path string) slog.Attr {
	return slog.String("source", path)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
