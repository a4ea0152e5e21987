package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newCountingHandler() (http.Handler, *int) {
	calls := 0
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, "%s %s call %d", r.Method, r.URL.Path, calls)
	})
	return h, &calls
}

func TestIdempotency_ReplaysSameRequest(t *testing.T) {
	store := NewInMemoryIdempotencyStore(time.Minute)
	defer store.Stop()

	handler, calls := newCountingHandler()
	wrapped := Idempotency(store, "Idempotency-Key")(handler)

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
	req.Header.Set("Idempotency-Key", "abc-123")
	wrapped.ServeHTTP(first, req)

	second := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
	req2.Header.Set("Idempotency-Key", "abc-123")
	wrapped.ServeHTTP(second, req2)

	if *calls != 1 {
		t.Errorf("expected handler to run once, ran %d times", *calls)
	}
	if second.Header().Get("X-Idempotency-Replay") != "true" {
		t.Error("expected replay header on second response")
	}
	if first.Body.String() != second.Body.String() {
		t.Errorf("replay body mismatch: %q vs %q", first.Body.String(), second.Body.String())
	}
}

func TestIdempotency_KeyIsScopedToMethodAndPath(t *testing.T) {
	store := NewInMemoryIdempotencyStore(time.Minute)
	defer store.Stop()

	handler, calls := newCountingHandler()
	wrapped := Idempotency(store, "Idempotency-Key")(handler)

	bookingResp := httptest.NewRecorder()
	bookingReq := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
	bookingReq.Header.Set("Idempotency-Key", "shared-key")
	wrapped.ServeHTTP(bookingResp, bookingReq)

	// Same key against a different endpoint must not replay the booking
	// response.
	contactResp := httptest.NewRecorder()
	contactReq := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	contactReq.Header.Set("Idempotency-Key", "shared-key")
	wrapped.ServeHTTP(contactResp, contactReq)

	if *calls != 2 {
		t.Fatalf("expected both endpoints to run, handler ran %d times", *calls)
	}
	if contactResp.Header().Get("X-Idempotency-Replay") == "true" {
		t.Error("response for a different path was replayed")
	}
	if !strings.Contains(contactResp.Body.String(), "/api/contact") {
		t.Errorf("contact endpoint got another endpoint's body: %q", contactResp.Body.String())
	}

	// Same key, same path, different method also runs fresh.
	putResp := httptest.NewRecorder()
	putReq := httptest.NewRequest(http.MethodPut, "/api/bookings", nil)
	putReq.Header.Set("Idempotency-Key", "shared-key")
	wrapped.ServeHTTP(putResp, putReq)

	if *calls != 3 {
		t.Errorf("expected PUT to run fresh, handler ran %d times", *calls)
	}
}

func TestIdempotency_FailuresAreNotCached(t *testing.T) {
	store := NewInMemoryIdempotencyStore(time.Minute)
	defer store.Stop()

	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	})
	wrapped := Idempotency(store, "Idempotency-Key")(handler)

	for i := 0; i < 2; i++ {
		resp := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		req.Header.Set("Idempotency-Key", "retry-me")
		wrapped.ServeHTTP(resp, req)
	}

	if calls != 2 {
		t.Errorf("expected failed request to be retryable, handler ran %d times", calls)
	}
}
