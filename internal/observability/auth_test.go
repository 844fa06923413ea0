package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"arachnid/internal/spider"
)

func TestSpiderKeyGate(t *testing.T) {
	const key = "SPIDER-CLEARANCE-OMEGA-7"
	handler := SpiderKey(key)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"valid key", key, http.StatusOK},
		{"missing key", "", http.StatusUnauthorized},
		{"wrong key", "SPIDER-CLEARANCE-OMEGA-8", http.StatusUnauthorized},
		{"single character mutation", "SPIDER-CLEARANCE-OMEGA-7 ", http.StatusUnauthorized},
		{"other domain key", "WEB-CLEARANCE-ALPHA-1", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/spider/agents", nil)
			if tc.header != "" {
				req.Header.Set(spider.KeyHeader, tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestSpiderKeyEmptyConfiguredKeyDeniesAll(t *testing.T) {
	handler := SpiderKey("")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(spider.KeyHeader, "")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
