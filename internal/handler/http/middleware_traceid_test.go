package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nstepanov/lockbox/internal/logger"
	"github.com/nstepanov/lockbox/internal/utils"
)

func TestWithTraceID_StoresIDInContext(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	var got string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, _ = utils.GetTraceIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/policy", nil)
	req.Header.Set(traceIDHeader, "trace-abc")
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	assert.Equal(t, "trace-abc", got)
}

func TestWithTraceID_GeneratesIDWhenHeaderMissing(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	var got string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, _ = utils.GetTraceIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/policy", nil)
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	assert.NotEmpty(t, got)
	assert.Equal(t, got, rr.Header().Get(traceIDHeader), "context id and response header must agree")
}
