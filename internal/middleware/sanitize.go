package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/vidarbha-bioenergy/contact-api/internal/logger"
	"github.com/vidarbha-bioenergy/contact-api/internal/middleware/metrics"
	"github.com/vidarbha-bioenergy/contact-api/internal/sanitize"
	"github.com/vidarbha-bioenergy/contact-api/internal/utils"
)

// Sanitize limits the body to maxBytes and strips store operator keys from the
// JSON body and the query string before any handler sees them.
func Sanitize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			removed := 0

			if len(r.URL.Query()) > 0 {
				query, n := sanitize.Query(r.URL.Query())
				if n > 0 {
					r.URL.RawQuery = query.Encode()
					removed += n
				}
			}

			if r.Body != nil && r.Body != http.NoBody {
				body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
				r.Body.Close()
				if err != nil {
					var maxBytesErr *http.MaxBytesError
					if errors.As(err, &maxBytesErr) {
						utils.WriteMessage(w, http.StatusRequestEntityTooLarge, "Body is too large")
						return
					}
					logger.Log.Debug("failed to read request body", "error", err)
					utils.WriteMessage(w, http.StatusBadRequest, "Failed to read request body")
					return
				}
				clean, n := sanitize.JSON(body)
				removed += n
				r.Body = io.NopCloser(bytes.NewReader(clean))
				r.ContentLength = int64(len(clean))
			}

			if removed > 0 {
				logger.Log.Warn("removed operator keys from request",
					"method", r.Method, "path", r.URL.Path, "removed", removed)
				metrics.KeysSanitized(removed)
			}

			next.ServeHTTP(w, r)
		})
	}
}
