package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"charge-finder/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Value string `json:"value"`
}

func TestGetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		assert.Equal(t, "52.5", r.URL.Query().Get("latitude"))
		assert.Equal(t, "yes", r.Header.Get("X-Extra"))
		_ = json.NewEncoder(w).Encode(payload{Value: "ok"})
	}))
	defer server.Close()

	c := New("registry", time.Second, WithAuth(QueryAuth{Param: "key"}, "secret"))
	var out payload
	err := c.GetJSON(context.Background(), "nearby", server.URL+"/poi/", url.Values{"latitude": {"52.5"}}, map[string]string{"X-Extra": "yes"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "ok", out.Value)
}

func TestPostJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		var in payload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_ = json.NewEncoder(w).Encode(payload{Value: in.Value + "!"})
	}))
	defer server.Close()

	c := New("directory", time.Second, WithAuth(HeaderAuth{Header: "X-Api-Key"}, "secret"))
	var out payload
	err := c.PostJSON(context.Background(), "search", server.URL, payload{Value: "hi"}, nil, &out)

	require.NoError(t, err)
	assert.Equal(t, "hi!", out.Value)
}

func TestClientErrors(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "down", http.StatusServiceUnavailable)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "client error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("{not json"))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			var out payload
			err := New("registry", time.Second).GetJSON(context.Background(), "nearby", server.URL, nil, nil, &out)

			require.Error(t, err)
			assert.ErrorIs(t, err, reconcile.ErrProviderUnavailable)
			var perr *reconcile.ProviderError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.wantStatus, perr.StatusCode)
			assert.Equal(t, "registry", perr.Provider)
		})
	}
}

func TestClientErrors_HidesKeyOnTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	c := New("registry", 20*time.Millisecond, WithAuth(QueryAuth{Param: "key"}, "top-secret"))
	var out payload
	err := c.GetJSON(context.Background(), "nearby", server.URL, nil, nil, &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, reconcile.ErrProviderUnavailable)
	assert.NotContains(t, err.Error(), "top-secret")
}

func TestNoAuthWithoutKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("key"))
		_ = json.NewEncoder(w).Encode(payload{})
	}))
	defer server.Close()

	var out payload
	err := New("registry", 0, WithAuth(QueryAuth{Param: "key"}, "")).GetJSON(context.Background(), "nearby", server.URL, nil, nil, &out)

	assert.NoError(t, err)
}

func TestGetJSON_CoalescesConcurrentCalls(t *testing.T) {
	var hits atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			close(entered)
		}
		<-release
		_ = json.NewEncoder(w).Encode(payload{Value: "shared"})
	}))
	defer server.Close()

	c := New("registry", 5*time.Second, WithCoalescing())
	call := func() (payload, error) {
		var out payload
		err := c.GetJSON(context.Background(), "nearby", server.URL, url.Values{"q": {"1"}}, nil, &out)
		return out, err
	}

	var wg sync.WaitGroup
	results := make([]payload, 3)
	errs := make([]error, 3)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = call()
	}()
	<-entered
	for i := 1; i < 3; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = call()
		}(i)
	}
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, "shared", results[i].Value)
	}
}

func TestGetJSON_CoalescedCallSurvivesFirstCallerCancel(t *testing.T) {
	var hits atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			close(entered)
		}
		<-release
		_ = json.NewEncoder(w).Encode(payload{Value: "shared"})
	}))
	defer server.Close()

	c := New("registry", 5*time.Second, WithCoalescing())
	first, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		var out payload
		firstErr <- c.GetJSON(first, "nearby", server.URL, nil, nil, &out)
	}()
	<-entered

	secondErr := make(chan error, 1)
	var second payload
	go func() {
		secondErr <- c.GetJSON(context.Background(), "nearby", server.URL, nil, nil, &second)
	}()
	time.Sleep(50 * time.Millisecond)

	cancel()
	err := <-firstErr
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	require.NoError(t, <-secondErr)
	assert.Equal(t, "shared", second.Value)
	assert.Equal(t, int32(1), hits.Load())
}
