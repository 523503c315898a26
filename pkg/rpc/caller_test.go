package rpc_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satworks/electrum-jsonrpc/pkg/rpc"
)

func TestHTTPCallerCall(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, `{"ping":true}`, string(data))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"pong":true}`))
	}))
	defer server.Close()

	caller := rpc.NewHTTPCaller(rpc.DefaultHTTPCallerConfig)
	req, err := http.NewRequest(http.MethodPost, server.URL, strings.NewReader(`{"ping":true}`))
	require.NoError(t, err)

	res, err := caller.Call(context.Background(), req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"pong":true}`, string(data))
}

func TestHTTPCallerTimeout(t *testing.T) {
	t.Parallel()

	server := newSlowServer(t, 2*time.Second)
	defer server.Close()

	caller := rpc.NewHTTPCaller(rpc.HTTPCallerConfig{Timeout: 50 * time.Millisecond})
	req, err := http.NewRequest(http.MethodPost, server.URL, http.NoBody)
	require.NoError(t, err)

	_, err = caller.Call(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Client.Timeout exceeded")
}

func TestHTTPCallerContextDeadline(t *testing.T) {
	t.Parallel()

	server := newSlowServer(t, 2*time.Second)
	defer server.Close()

	caller := rpc.NewHTTPCaller(rpc.DefaultHTTPCallerConfig)
	req, err := http.NewRequest(http.MethodPost, server.URL, http.NoBody)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = caller.Call(ctx, req)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPCallerContextCancel(t *testing.T) {
	t.Parallel()

	server := newSlowServer(t, 2*time.Second)
	defer server.Close()

	caller := rpc.NewHTTPCaller(rpc.DefaultHTTPCallerConfig)
	req, err := http.NewRequest(http.MethodPost, server.URL, http.NoBody)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err = caller.Call(ctx, req)
	require.ErrorIs(t, err, context.Canceled)
}

func TestHTTPCallerConcurrentCalls(t *testing.T) {
	t.Parallel()

	var served atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	caller := rpc.NewHTTPCaller(rpc.DefaultHTTPCallerConfig)

	const workers = 8
	const callsPerWorker = 5

	var wg sync.WaitGroup
	errs := make(chan error, workers*callsPerWorker)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < callsPerWorker; j++ {
				req, err := http.NewRequest(http.MethodPost, server.URL, http.NoBody)
				if err != nil {
					errs <- err
					continue
				}
				res, err := caller.Call(context.Background(), req)
				if err != nil {
					errs <- err
					continue
				}
				res.Body.Close()
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int64(workers*callsPerWorker), served.Load())
}

// newSlowServer answers only after the given delay or once the client
// goes away.
func newSlowServer(t *testing.T, delay time.Duration) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
		w.Write([]byte(`{}`))
	}))
}
