package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInstrumentCountsByRoutePattern(t *testing.T) {
	Register()
	Register()

	r := chi.NewRouter()
	r.Use(Instrument)
	r.Get("/api/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/plain", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("/api/items/{id}", http.MethodGet, "418"))
	beforePlain := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("/plain", http.MethodGet, "200"))

	for _, path := range []string{"/api/items/1", "/api/items/2", "/plain"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, before+2, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("/api/items/{id}", http.MethodGet, "418")))
	assert.Equal(t, beforePlain+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("/plain", http.MethodGet, "200")))
}
