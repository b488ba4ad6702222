package httpserver

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoutes() []Route {
	return []Route{
		{Pattern: "/emotionDetector", Handler: func(w http.ResponseWriter, r *http.Request) {
			writeMessage(w, http.StatusOK, "ok")
		}},
		{Pattern: "/panic", Handler: func(w http.ResponseWriter, r *http.Request) {
			panic("something broke")
		}},
	}
}

func TestNewHandler(t *testing.T) {
	var logs bytes.Buffer
	handler := NewHandler(zerolog.New(&logs), testRoutes())

	t.Run("serves registered route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/emotionDetector", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"ok"}`, w.Body.String())
	})

	t.Run("unknown path keeps the envelope", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/sentimentDetector", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Not found"}`, w.Body.String())
	})

	t.Run("panic becomes 500", func(t *testing.T) {
		logs.Reset()
		req := httptest.NewRequest(http.MethodGet, "/panic", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
		assert.Contains(t, logs.String(), "something broke")
	})

	t.Run("access log carries request id but no body", func(t *testing.T) {
		logs.Reset()
		req := httptest.NewRequest(http.MethodPost, "/emotionDetector", bytes.NewBufferString(`{"text":"secret diary"}`))
		req.Header.Set(RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		out := logs.String()
		assert.Contains(t, out, `"request_id":"req-123"`)
		assert.Contains(t, out, `"path":"/emotionDetector"`)
		assert.Contains(t, out, `"status":200`)
		assert.NotContains(t, out, "secret diary")
	})
}

func TestRequestID(t *testing.T) {
	handler := NewHandler(zerolog.Nop(), testRoutes())

	t.Run("generates new request ID when not provided", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/emotionDetector", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Len(t, w.Header().Get(RequestIDHeader), 36)
	})

	t.Run("uses provided request ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/emotionDetector", nil)
		req.Header.Set(RequestIDHeader, "custom-request-id-123")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, "custom-request-id-123", w.Header().Get(RequestIDHeader))
	})
}

func TestServer_Run(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())

	srv := New(Config{Addr: addr, ShutdownTimeout: time.Second, Routes: testRoutes()}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Post("http://"+addr+"/emotionDetector", "application/json", nil)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunListenError(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	srv := New(Config{Addr: lis.Addr().String(), ShutdownTimeout: time.Second}, zerolog.Nop())
	err = srv.Run(context.Background())
	assert.Error(t, err)
}
