package testutil

import (
	"context"
	"net/http"
	"sync/atomic"
)

// FakeHTTPServer stands in for the proxy's listener in lifecycle tests.
// ListenAndServe returns ListenErr immediately. Shutdown blocks on Unblock
// when it is set, otherwise it returns at once.
type FakeHTTPServer struct {
	AddrVal    string
	HandlerVal http.Handler
	ListenErr  error
	Unblock    chan struct{}

	listens   atomic.Int32
	shutdowns atomic.Int32
}

func (f *FakeHTTPServer) ListenAndServe() error {
	f.listens.Add(1)
	return f.ListenErr
}

func (f *FakeHTTPServer) Shutdown(ctx context.Context) error {
	f.shutdowns.Add(1)
	if f.Unblock == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-f.Unblock:
		return nil
	}
}

func (f *FakeHTTPServer) Addr() string {
	if f.AddrVal == "" {
		return ":0"
	}
	return f.AddrVal
}

func (f *FakeHTTPServer) Handler() http.Handler {
	if f.HandlerVal == nil {
		return http.NotFoundHandler()
	}
	return f.HandlerVal
}

// Listens reports how many times ListenAndServe ran.
func (f *FakeHTTPServer) Listens() int { return int(f.listens.Load()) }

// Shutdowns reports how many times Shutdown ran.
func (f *FakeHTTPServer) Shutdowns() int { return int(f.shutdowns.Load()) }
