// SPDX-License-Identifier: GPL-3.0-only

package middlewares

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ConditionalGetMiddleware tags successful GET and HEAD responses with a
// strong ETag derived from digest and turns them into 304 Not Modified when
// the client already holds that tag. Error responses are left untouched. An
// empty digest disables it.
func ConditionalGetMiddleware(digest string) echo.MiddlewareFunc {
	etag := ""
	if digest != "" {
		etag = `"` + digest + `"`
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if etag == "" || (req.Method != http.MethodGet && req.Method != http.MethodHead) {
				return next(c)
			}

			matched := etagMatches(req.Header.Get("If-None-Match"), etag)
			res := c.Response()
			writer := &notModifiedWriter{ResponseWriter: res.Writer}
			res.Writer = writer

			// runs inside WriteHeader, after the handler picked its status
			res.Before(func() {
				if res.Status != http.StatusOK {
					return
				}
				res.Header().Set("ETag", etag)
				if matched {
					c.Logger().Debug("ETag matched, answering 304 for ", req.URL.Path)
					res.Status = http.StatusNotModified
					res.Header().Del(echo.HeaderContentType)
					res.Header().Del(echo.HeaderContentLength)
					writer.discard = true
				}
			})
			return next(c)
		}
	}
}

// notModifiedWriter drops the body once a response became a 304.
type notModifiedWriter struct {
	http.ResponseWriter
	discard bool
}

func (w *notModifiedWriter) Write(b []byte) (int, error) {
	if w.discard {
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
}

func (w *notModifiedWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
