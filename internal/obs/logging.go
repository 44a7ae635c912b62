// Package obs contains observability utilities such as logging.
package obs

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the global structured logger used by the storefront.
//
// It starts as a discard logger so packages may log before InitLogger runs;
// InitLogger swaps in the real handler.
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// InitLogger initializes the global Logger with a JSON handler on stderr at
// the given level.
func InitLogger(level slog.Level) {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	Logger = slog.New(h)
}
