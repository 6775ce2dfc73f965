package requestid

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"

	"github.com/tfalohun/olera-sub001/pkg/requestcontext"
)

func TestMiddleware_CopiesChiRequestID(t *testing.T) {
	var got string
	h := chimw.RequestID(Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = requestcontext.RequestID(r.Context())
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimw.RequestIDHeader, "req-from-edge")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "req-from-edge", got)
}
