package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func captureRequestID(t *testing.T, incoming string) (ctxID, headerID string) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	if incoming != "" {
		req.Header.Set(chimiddleware.RequestIDHeader, incoming)
	}
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = chimiddleware.GetReqID(r.Context())
	}))
	h.ServeHTTP(rec, req)
	return ctxID, rec.Header().Get(chimiddleware.RequestIDHeader)
}

func TestRequestIDGeneratesUUIDv4(t *testing.T) {
	ctxID, headerID := captureRequestID(t, "")

	if ctxID == "" || ctxID != headerID {
		t.Fatalf("expected matching generated IDs, got ctx=%q header=%q", ctxID, headerID)
	}
	parsed, err := uuid.Parse(ctxID)
	if err != nil {
		t.Fatalf("request ID %q is not a valid UUID: %v", ctxID, err)
	}
	if parsed.Version() != 4 {
		t.Fatalf("expected UUIDv4, got version %d", parsed.Version())
	}
}

func TestRequestIDHandlesIncomingHeader(t *testing.T) {
	tests := []struct {
		name    string
		inputID string
		wantNew bool
	}{
		{"alphanumeric preserved", "abc123-XYZ", false},
		{"traceparent format preserved", "00-ab42124a3c573678d4d8b21ba52df3bf-d21f7bc17caa5aba-01", false},
		{"spaces preserved", "trace id 123", false},
		{"max length preserved", strings.Repeat("x", 128), false},
		{"too long rejected", strings.Repeat("a", 129), true},
		{"newline rejected", "valid\ninjected-line", true},
		{"tab rejected", "valid\ttab", true},
		{"DEL rejected", "valid\x7Fdel", true},
		{"high byte rejected", "valid\x80high", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctxID, headerID := captureRequestID(t, tc.inputID)
			if ctxID != headerID {
				t.Fatalf("context %q and header %q differ", ctxID, headerID)
			}
			if !tc.wantNew {
				if ctxID != tc.inputID {
					t.Fatalf("expected %q, got %q", tc.inputID, ctxID)
				}
				return
			}
			if ctxID == tc.inputID {
				t.Fatalf("expected replacement ID, got original %q", ctxID)
			}
			if _, err := uuid.Parse(ctxID); err != nil {
				t.Fatalf("expected UUID replacement, got %q: %v", ctxID, err)
			}
		})
	}
}

func TestIsValidRequestIDByteRanges(t *testing.T) {
	for c := range 256 {
		id := "id" + string(byte(c))
		want := c >= 0x20 && c <= 0x7E
		if got := isValidRequestID(id); got != want {
			t.Errorf("byte 0x%02X: got %v, want %v", c, got, want)
		}
	}
	if isValidRequestID("") {
		t.Error("empty ID must be rejected")
	}
}

func TestRequestIDUniquePerRequest(t *testing.T) {
	seen := make(map[string]bool)
	for i := range 10 {
		id, _ := captureRequestID(t, "")
		if seen[id] {
			t.Fatalf("duplicate request ID on iteration %d: %s", i, id)
		}
		seen[id] = true
	}
}
