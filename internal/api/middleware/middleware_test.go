package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("generates id when absent", func(t *testing.T) {
		var seen string
		h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(requestIDKey).(string)
		}))

		req := httptest.NewRequest(http.MethodGet, "/transfers/quote/abc", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		if seen == "" {
			t.Error("expected a request id in context")
		}
		if got := w.Header().Get(headerRequestID); got != seen {
			t.Errorf("response header %s = %q, context id = %q", headerRequestID, got, seen)
		}
	})

	t.Run("propagates caller-supplied id", func(t *testing.T) {
		var seen string
		h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(requestIDKey).(string)
		}))

		req := httptest.NewRequest(http.MethodGet, "/transfers", nil)
		req.Header.Set(headerRequestID, "caller-id-42")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		if seen != "caller-id-42" {
			t.Errorf("context id = %q, want caller-id-42", seen)
		}
	})
}

func TestRequestLoggingMiddleware_CapturesStatus(t *testing.T) {
	logger := zap.NewNop().Sugar()
	h := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"transfer not found"}`))
	}))

	req := httptest.NewRequest(http.MethodGet, "/transfers/unknown", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
