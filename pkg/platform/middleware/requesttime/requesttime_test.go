package requesttime

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tfalohun/olera-sub001/pkg/requestcontext"
)

func TestNew_PinsClock(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.FixedZone("CST", -6*3600))

	var seen time.Time
	h := New(func() time.Time { return fixed })(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = requestcontext.Now(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, time.UTC, seen.Location())
	assert.True(t, seen.Equal(fixed.Truncate(time.Microsecond)))
}
