package metrics

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CreateRequests counts weather record creation attempts by outcome.
var CreateRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "weather_create_requests_total",
	Help: "Weather record creation attempts, labelled by outcome.",
}, []string{"outcome"})

// RegisterRecordGauge exposes the current record count as a gauge. Call it
// once at startup.
func RegisterRecordGauge(count func() int) {
	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "weather_records",
		Help: "Number of weather records currently stored.",
	}, func() float64 {
		return float64(count())
	})
}

// Handler adapts the Prometheus scrape handler to a Fiber route.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
