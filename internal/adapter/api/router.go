package api

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewApp returns a Fiber app using go-json and the JSON error handler.
func NewApp(appName string) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               appName,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})
}

func SetupRouter(app *fiber.App, handler *RecommendationHandler, allowedOrigins []string) {
	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(RequestLogger())
	app.Use(corsMiddleware(allowedOrigins))

	app.Get("/", handler.HandleHealth)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Endpoints
	apiGroup := app.Group("/api")
	apiGroup.Post("/recommendations", handler.HandleRecommendations)
}

// corsMiddleware only allows credentials for an explicit origin list;
// Fiber rejects credentials combined with a wildcard.
func corsMiddleware(allowedOrigins []string) fiber.Handler {
	if len(allowedOrigins) == 0 {
		return cors.New(cors.Config{AllowOrigins: "*"})
	}
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(allowedOrigins, ","),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowCredentials: true,
	})
}
