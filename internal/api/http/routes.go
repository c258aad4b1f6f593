package httpapi

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/i474232898/weather-lookup/internal/metrics"
	"github.com/i474232898/weather-lookup/internal/store"
	"github.com/i474232898/weather-lookup/internal/weather"
)

var validate = validator.New()

const serviceName = "weather-lookup"

// NewApp builds the Fiber application: middleware, health and metrics
// endpoints, and the weather routes.
func NewApp(service *weather.Service, corsOrigin string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler:          errorHandler,
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigin,
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "*",
		AllowCredentials: true,
	}))

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": serviceName,
			"records": service.Count(),
		})
	})

	app.Get("/metrics", metrics.Handler())

	RegisterRoutes(app, service)

	return app
}

// errorHandler is the centralized error response. Arbitrary error text is
// never exposed to clients, only messages set via fiber.NewError.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	detail := "internal server error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		detail = e.Message
	}
	return c.Status(code).JSON(fiber.Map{
		"detail": detail,
	})
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	app.Post("/weather", createHandler(service))

	app.Get("/weather/astro/:id", subviewHandler(service.Astronomy))
	app.Get("/weather/location/:id", subviewHandler(service.PreciseLocation))
	app.Get("/weather/air-quality/:id", subviewHandler(service.AirQuality))

	app.Get("/weather/:id", func(c *fiber.Ctx) error {
		rec, err := service.Get(c.Params("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "weather data not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
		}
		return c.JSON(rec)
	})
}

// createRequest holds the POST /weather body.
type createRequest struct {
	Date     string `json:"date" validate:"required"`
	Location string `json:"location" validate:"required"`
	Notes    string `json:"notes"`
}

func createHandler(service *weather.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		rec, err := service.Create(c.UserContext(), req.Date, req.Location, req.Notes)
		if err != nil {
			return createError(err)
		}

		metrics.CreateRequests.WithLabelValues("created").Inc()
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": rec.ID})
	}
}

// createError maps provider failures onto client-facing responses.
func createError(err error) error {
	switch {
	case errors.Is(err, weather.ErrProviderRejected):
		metrics.CreateRequests.WithLabelValues("provider_rejected").Inc()
		return fiber.NewError(fiber.StatusBadRequest, "weather provider rejected the request")
	case errors.Is(err, weather.ErrProviderUnreachable):
		metrics.CreateRequests.WithLabelValues("provider_unreachable").Inc()
		return fiber.NewError(fiber.StatusBadGateway, "weather provider unreachable")
	}

	var httpErr *weather.ProviderHTTPError
	if errors.As(err, &httpErr) {
		metrics.CreateRequests.WithLabelValues("provider_http_error").Inc()
		return fiber.NewError(httpErr.StatusCode, fmt.Sprintf("weather provider returned status %d", httpErr.StatusCode))
	}

	metrics.CreateRequests.WithLabelValues("internal_error").Inc()
	return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
}

// subviewHandler serves one section of a stored record's provider response.
// A missing record and a missing section both answer 404, with distinct
// detail messages.
func subviewHandler(extract func(id string) (weather.Document, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		section, err := extract(c.Params("id"))
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				return fiber.NewError(fiber.StatusNotFound, "weather data not found")
			case errors.Is(err, weather.ErrSectionUnavailable):
				return fiber.NewError(fiber.StatusNotFound, "no data available")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
		}
		return c.JSON(section)
	}
}
