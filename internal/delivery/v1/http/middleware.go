package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/store-api/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
)

// accessLog пишет одну строку на запрос: метод, путь, статус, длительность и request id.
func accessLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			log.With(
				"request_id", middleware.GetReqID(r.Context()),
				"status", status,
				"duration", time.Since(start).String(),
				"bytes", ww.BytesWritten(),
			).Infof("%s %s", r.Method, r.URL.Path)
		})
	}
}
