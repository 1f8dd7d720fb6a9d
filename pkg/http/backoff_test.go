package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestBackoffRetriesServerErrors(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	var resp struct {
		OK bool `json:"ok"`
	}

	_, _, status, err := client.Request().
		WithContext(context.Background()).
		WithMethod(GET).
		WithPath("/").
		WithSuccessResp(&resp).
		WithBackoff(&BackoffConfig{MaxRetries: 3, InitialInterval: time.Millisecond}).
		Execute()

	if err != nil {
		t.Fatalf("expected the third attempt to succeed, got: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d", status)
	}
	if !resp.OK {
		t.Fatal("expected the success body to be decoded")
	}
	if got := atomic.LoadInt32(&hits); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestBackoffDoesNotRetryClientErrors(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "not found"}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})

	_, _, status, err := client.Request().
		WithContext(context.Background()).
		WithMethod(GET).
		WithPath("/").
		WithBackoff(&BackoffConfig{MaxRetries: 3, InitialInterval: time.Millisecond}).
		Execute()

	if err == nil {
		t.Fatal("expected an error for a 404")
	}
	if status != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", status)
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected a single attempt for a client error, got %d", got)
	}
}

func TestBackoffStopsOnContextCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, _, err := client.Request().
		WithContext(ctx).
		WithMethod(GET).
		WithPath("/").
		WithBackoff(&BackoffConfig{MaxRetries: 5, InitialInterval: time.Second}).
		Execute()

	if err == nil {
		t.Fatal("expected a context error")
	}
}
