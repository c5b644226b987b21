package web

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// LogHandler logs every request with its status, size and duration.
// Server errors are logged as warnings.
func LogHandler(h http.Handler, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		h.ServeHTTP(sw, r)
		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sw.status),
			zap.Int64("bytes", sw.size),
			zap.Duration("elapsed", time.Since(start)),
		}
		if sw.status >= http.StatusInternalServerError {
			log.Warn("request failed", fields...)
			return
		}
		log.Debug("request", fields...)
	})
}

// statusWriter remembers the status code and the number of bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	size   int64
}

func (w *statusWriter) WriteHeader(statusCode int) {
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.size += int64(n)
	return n, err
}

// Unwrap returns the underlying writer for http.ResponseController.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
