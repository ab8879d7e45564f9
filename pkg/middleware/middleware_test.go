package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/orders-backoffice-api/pkg/log"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
}

func TestCors(t *testing.T) {
	tests := []struct {
		name          string
		origins       []string
		method        string
		origin        string
		expectedAllow string
		expectedCode  int
	}{
		{name: "origem liberada", origins: []string{"http://localhost:3000/"}, method: http.MethodGet, origin: "http://localhost:3000", expectedAllow: "http://localhost:3000", expectedCode: http.StatusCreated},
		{name: "origem bloqueada", origins: []string{"http://localhost:3000"}, method: http.MethodGet, origin: "https://evil.com", expectedCode: http.StatusCreated},
		{name: "curinga", origins: []string{"*"}, method: http.MethodGet, origin: "https://any.com", expectedAllow: "https://any.com", expectedCode: http.StatusCreated},
		{name: "preflight", origins: []string{"http://localhost:3000"}, method: http.MethodOptions, origin: "http://localhost:3000", expectedAllow: "http://localhost:3000", expectedCode: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/orders", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.origins)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedAllow, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLoggingMiddleware_SetsCorrelationID(t *testing.T) {
	log.SetupTestLogger()

	var fromContext string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromContext = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sites/9", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, fromContext)
	assert.Equal(t, fromContext, rec.Header().Get(CorrelationIDHeader))
}

func TestLoggingMiddleware_ReusesIncomingCorrelationID(t *testing.T) {
	log.SetupTestLogger()

	var fromContext string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromContext = log.GetCorrelationID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	req.Header.Set(CorrelationIDHeader, "from-client")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "from-client", fromContext)
	assert.Equal(t, "from-client", rec.Header().Get(CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/orders", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}
