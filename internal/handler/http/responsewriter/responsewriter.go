// Package responsewriter wraps http.ResponseWriter so the logging and
// metrics middleware can observe the status code and body size of a
// completed response.
package responsewriter

import "net/http"

// ResponseWriter records what flows through the underlying writer.
type ResponseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
	wrote  bool
}

// Wrap returns a recording writer around w. The status defaults to 200,
// matching net/http's behavior when a handler writes without an explicit
// WriteHeader.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards the first call and ignores the rest, mirroring the
// superfluous-WriteHeader handling of the standard library.
func (w *ResponseWriter) WriteHeader(status int) {
	if w.wrote {
		return
	}
	w.status = status
	w.wrote = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// StatusCode returns the status sent to the client.
func (w *ResponseWriter) StatusCode() int { return w.status }

// BytesWritten returns the body size in bytes.
func (w *ResponseWriter) BytesWritten() int { return w.bytes }

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
