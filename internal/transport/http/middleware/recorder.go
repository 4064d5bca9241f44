package middleware

import "net/http"

// StatusRecorder wraps http.ResponseWriter to capture the status code
// for after-the-fact logging and metrics.
type StatusRecorder struct {
	http.ResponseWriter
	status  int
	written bool
}

func NewStatusRecorder(w http.ResponseWriter) *StatusRecorder {
	return &StatusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// Status returns the recorded code; only the first write counts.
func (sr *StatusRecorder) Status() int {
	return sr.status
}

func (sr *StatusRecorder) WriteHeader(code int) {
	if !sr.written {
		sr.status = code
		sr.written = true
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *StatusRecorder) Write(b []byte) (int, error) {
	if !sr.written {
		sr.status = http.StatusOK
		sr.written = true
	}
	return sr.ResponseWriter.Write(b)
}
