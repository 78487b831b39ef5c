package restapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"simdshare.ubdc.ac.uk/internal/logging"
)

// recoverPanic turns a panicking handler into a JSON 500.
func (api *RestAPI) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logging.FromContext(r.Context()).Error("panic serving request",
				slog.Any("panic", rec),
				slog.String("path", r.URL.Path),
				slog.String("stack", string(debug.Stack())),
				slog.String("component", "http_server"))

			w.Header().Set("Connection", "close")
			api.serverErrorResponse(w, r, fmt.Errorf("panic: %v", rec))
		}()

		next.ServeHTTP(w, r)
	})
}
