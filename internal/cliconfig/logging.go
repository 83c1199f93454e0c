package cliconfig

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/bft-labs/solid/pkg/log"
)

// Logger returns the process logger writing to out at the given level.
// Unknown or empty levels fall back to info.
func Logger(out io.Writer, level string) *log.ZerologAdapter {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return log.NewZerologAdapter(out, lvl)
}
