package middleware

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/dto"
)

// Timeout returns middleware that enforces a request deadline. The handler
// runs in its own goroutine with a context carrying the deadline, and its
// response is buffered. If the deadline passes first, a 504 problem+json
// response with code REQUEST_TIMEOUT is written instead.
//
// Handlers that stream large bodies (attachment downloads) call Flush
// through http.ResponseController once headers are set. That commits the
// buffered response and later writes go straight to the client; a deadline
// hit after that point can only cut the stream short.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			tw := &timeoutWriter{w: w}
			done := make(chan struct{})

			go func() {
				next.ServeHTTP(tw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.commit()
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				if !tw.committed {
					dto.WriteErrorResponse(w, r, fmt.Errorf("request exceeded %s: %w", timeout, context.DeadlineExceeded))
				}
			}
		})
	}
}

// timeoutWriter buffers the response until the handler finishes or flushes.
// All fields are guarded by mu, which the handler goroutine and the
// timeout path share.
type timeoutWriter struct {
	w           http.ResponseWriter
	mu          sync.Mutex
	header      http.Header
	buf         []byte
	statusCode  int
	wroteHeader bool
	committed   bool
	timedOut    bool
}

func (tw *timeoutWriter) Header() http.Header {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.committed {
		return tw.w.Header()
	}
	if tw.header == nil {
		tw.header = make(http.Header)
	}
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wroteHeader {
		tw.statusCode = http.StatusOK
		tw.wroteHeader = true
	}
	if tw.committed {
		return tw.w.Write(b)
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.wroteHeader || tw.timedOut {
		return
	}
	tw.statusCode = code
	tw.wroteHeader = true
}

// FlushError commits the buffered response and flushes the client
// connection. Found by http.ResponseController.
func (tw *timeoutWriter) FlushError() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return http.ErrHandlerTimeout
	}
	if !tw.wroteHeader {
		tw.statusCode = http.StatusOK
		tw.wroteHeader = true
	}
	tw.commit()
	return http.NewResponseController(tw.w).Flush()
}

// commit copies the buffered response to the underlying writer once. Must
// be called with tw.mu held.
func (tw *timeoutWriter) commit() {
	if tw.committed {
		return
	}
	tw.committed = true

	if tw.header != nil {
		maps.Copy(tw.w.Header(), tw.header)
	}
	if tw.wroteHeader {
		tw.w.WriteHeader(tw.statusCode)
	}
	if len(tw.buf) > 0 {
		_, _ = tw.w.Write(tw.buf)
		tw.buf = nil
	}
}
