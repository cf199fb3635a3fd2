// Package logx builds the structured console logger used at the
// internal/engine boundary. Grounded on
// freeeve-chessgraph/api/internal/logx, unchanged in approach: the core
// packages (bitboard, position, movegen, eval, tt, search) stay
// I/O-free, so this is the only logging surface in the module.
package logx

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a zerolog logger configured for console output, with
// level controlled by the CHESSCORE_LOG_LEVEL environment variable
// (defaults to info).
func NewLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if raw := os.Getenv("CHESSCORE_LOG_LEVEL"); raw != "" {
		if parsed, err := zerolog.ParseLevel(raw); err == nil {
			level = parsed
		}
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		short := file
		for i := len(file) - 1; i > 0; i-- {
			if file[i] == '/' {
				short = file[i+1:]
				break
			}
		}
		return fmt.Sprintf("%-28s", fmt.Sprintf("%s:%d", short, line))
	}
	return zerolog.New(output).Level(level).With().Timestamp().Caller().Logger()
}
