package server

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// keyValueFormatter logs one key=value line per request through the standard logger.
type keyValueFormatter struct{}

func (keyValueFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &requestEntry{
		id:     middleware.GetReqID(r.Context()),
		method: r.Method,
		path:   r.URL.Path,
		remote: r.RemoteAddr,
	}
}

type requestEntry struct {
	id, method, path, remote string
}

func (e *requestEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	log.Printf("request id=%s method=%s path=%s status=%d bytes=%d duration=%s remote=%s",
		e.id, e.method, e.path, status, bytes, elapsed.Round(time.Microsecond), e.remote)
}

func (e *requestEntry) Panic(v interface{}, stack []byte) {
	log.Printf("request panic id=%s method=%s path=%s panic=%v\n%s", e.id, e.method, e.path, v, stack)
}

// requestLogger is chi's request logger with key=value output.
var requestLogger = middleware.RequestLogger(keyValueFormatter{})
