package http

import (
	"strconv"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	exportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_exports_total",
			Help: "Export attempts by format.",
		},
		[]string{"format"},
	)

	enrichmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_ai_requests_total",
			Help: "AI enrichment requests by kind.",
		},
		[]string{"kind"},
	)
)

// MetricsMiddleware counts every request by route pattern, not raw path, so
// entry ids do not explode the label space.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		route := c.Route().Path
		if route == "" {
			route = c.Path()
		}
		requestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(c.Response().StatusCode())).Inc()
		return err
	}
}

func RegisterMetrics(app *fiber.App) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func RecordExport(format string) { exportsTotal.WithLabelValues(format).Inc() }

func RecordEnrichment(kind string) { enrichmentsTotal.WithLabelValues(kind).Inc() }
