package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strconv"
	"time"

	"figure_catalog/internal/logger"
	"figure_catalog/internal/metrics"
)

// RequestIDKey - ключ для хранения ID запроса в контексте
type RequestIDKey string

const (
	// RequestIDHeader - имя заголовка для ID запроса
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey - ключ контекста для ID запроса
	RequestIDContextKey RequestIDKey = "request_id"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func generateRequestID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// RequestID достаёт ID запроса из контекста.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDContextKey).(string)
	return id
}

// RequestIDMiddleware добавляет ID запроса в контекст и в ответ
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = generateRequestID()
		}
		w.Header().Set(RequestIDHeader, requestID)
		ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LoggingMiddleware логирует каждый запрос и учитывает его в метриках
func LoggingMiddleware(m *metrics.Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}
		m.Requests.WithLabelValues(r.Method, path, strconv.Itoa(rw.statusCode)).Inc()
		m.RequestDuration.WithLabelValues(r.Method, path).Observe(duration.Seconds())

		logger.Log.WithFields(logger.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rw.statusCode,
			"duration":   duration,
			"request_id": RequestID(r.Context()),
			"remote_ip":  r.RemoteAddr,
		}).Info("Request handled")
	})
}
