package safe

import (
	"io"
	"log/slog"

	"github.com/legacylift/legacylift/pkg/utils/logging"
)

// Close closes the resource and logs a failure instead of returning it.
// Meant for defer sites where the close error has nowhere to go.
func Close(closer io.Closer) {
	if closer != nil {
		if err := closer.Close(); err != nil {
			if err == io.EOF {
				return
			}
			logging.Default().Warn("Fail to close resource", slog.Any("error", err))
		}
	}
}
