package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// accessEntry carries the same requestId the response envelope echoes,
// so a log line can be joined to the response a client saw.
type accessEntry struct {
	Time       string `json:"time"`
	RequestID  string `json:"requestId"`
	Method     string `json:"method"`
	Path       string `json:"path"`
	Status     int    `json:"status"`
	Bytes      int    `json:"bytes"`
	DurationMs int64  `json:"durationMs"`
}

type responseMeter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (m *responseMeter) WriteHeader(code int) {
	m.status = code
	m.ResponseWriter.WriteHeader(code)
}

func (m *responseMeter) Write(p []byte) (int, error) {
	n, err := m.ResponseWriter.Write(p)
	m.bytes += n
	return n, err
}

// Logger emits one JSON access-log line per request.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		meter := &responseMeter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(meter, r)

		line, _ := json.Marshal(accessEntry{
			Time:       start.UTC().Format(time.RFC3339),
			RequestID:  GetRequestID(r.Context()),
			Method:     r.Method,
			Path:       r.URL.Path,
			Status:     meter.status,
			Bytes:      meter.bytes,
			DurationMs: time.Since(start).Milliseconds(),
		})
		log.Println(string(line))
	})
}
