// Package logging configures the process-wide slog logger.
package logging

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
)

type Options struct {
	Level string
	JSON  bool
}

var def atomic.Value

func init() {
	cfg := &slog.HandlerOptions{Level: slog.LevelInfo}
	h := slog.NewTextHandler(os.Stderr, cfg)
	def.Store(slog.New(h))
}

func Configure(opts Options) {
	lvl := parseLevel(opts.Level)
	cfg := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	if opts.JSON {
		h = slog.NewJSONHandler(os.Stderr, cfg)
	} else {
		h = slog.NewTextHandler(os.Stderr, cfg)
	}
	def.Store(slog.New(h))
}

func parseLevel(s string) slog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// L returns the configured logger.
func L() *slog.Logger {
	l, _ := def.Load().(*slog.Logger)
	return l
}

// InitFromEnv configures the logger from S3TRANSLATE_LOG_LEVEL and
// S3TRANSLATE_LOG_JSON. Under Lambda, JSON output is the default so the
// log pipeline gets structured records.
func InitFromEnv() {
	lvl := os.Getenv("S3TRANSLATE_LOG_LEVEL")

	json := os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
	if v := os.Getenv("S3TRANSLATE_LOG_JSON"); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			json = b
		}
	}
	Configure(Options{Level: lvl, JSON: json})
}
