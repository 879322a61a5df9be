package http

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/nstepanov/lockbox/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags every request with a trace identifier: the caller's own
// when the header carries one, a fresh one otherwise. The id is stored under
// utils.TraceIDCtxKey, stamped on the request-scoped logger, and echoed back
// in the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = utils.NewID().String()
		}

		ctx := context.WithValue(r.Context(), utils.TraceIDCtxKey, traceID)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}
