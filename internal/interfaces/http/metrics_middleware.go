package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "garden_http_requests_total",
			Help: "Total de peticiones HTTP atendidas",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "garden_http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// MetricsMiddleware cuenta peticiones y mide su duración.
// El label path es el patrón de la ruta (/api/roles/:id), no la URL, para acotar la cardinalidad;
// "unmatched" solo cuando ninguna ruta atendió la petición.
// Los labels se copian: Fiber reutiliza los buffers de la petición y Prometheus conserva los strings.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		matched := true
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
				// El router de Fiber devuelve ErrNotFound cuando se agota la pila sin handler.
				matched = fe.Code != fiber.StatusNotFound
			}
		}

		path := "unmatched"
		if r := c.Route(); matched && r != nil && r.Path != "" {
			path = utils.CopyString(r.Path)
		}
		method := utils.CopyString(c.Method())
		httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return err
	}
}
