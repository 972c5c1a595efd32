package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"tasktamer/internal/handler/http/respond"
)

// Timeout returns middleware that bounds how long a request may run.
// The handler receives a context that is cancelled at the deadline, and
// if it has not produced a response by then the client gets a 504. The
// handler goroutine keeps running until it observes the cancellation;
// its late writes are discarded rather than raced against the 504 body.
func Timeout(limit time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			gw := &guardedWriter{inner: w}
			done := make(chan struct{})

			go func() {
				defer close(done)
				next.ServeHTTP(gw, r.WithContext(ctx))
			}()

			select {
			case <-done:
			case <-ctx.Done():
				if gw.seal() {
					respond.JSON(w, http.StatusGatewayTimeout, map[string]string{
						"error": "request timeout",
					})
				}
			}
		})
	}
}

// guardedWriter serializes writes between the handler goroutine and the
// timeout path. Once sealed, handler writes report http.ErrHandlerTimeout.
type guardedWriter struct {
	inner http.ResponseWriter

	mu     sync.Mutex
	wrote  bool
	sealed bool
}

// seal marks the writer as timed out. It reports true when the handler
// had not written yet, meaning the caller owns the timeout response.
func (g *guardedWriter) seal() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sealed = true
	return !g.wrote
}

func (g *guardedWriter) Header() http.Header {
	return g.inner.Header()
}

func (g *guardedWriter) WriteHeader(code int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.sealed || g.wrote {
		return
	}
	g.wrote = true
	g.inner.WriteHeader(code)
}

func (g *guardedWriter) Write(b []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.sealed {
		return 0, http.ErrHandlerTimeout
	}
	if !g.wrote {
		g.wrote = true
		g.inner.WriteHeader(http.StatusOK)
	}
	return g.inner.Write(b)
}
