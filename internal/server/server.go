package server

import (
	"log"

	"backend-runtracker/internal/auth"
	"backend-runtracker/internal/config"
	"backend-runtracker/internal/route"
	"backend-runtracker/internal/stream"
	"backend-runtracker/internal/tracking"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App      *fiber.App
	Cfg      config.Config
	Redis    *redis.Client
	Stream   *stream.Hub
	Feed     *route.Feed
	Tracking *tracking.Service
}

func NewServer(cfg config.Config, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	unit, err := route.ParseUnit(cfg.DistanceUnit)
	if err != nil {
		log.Printf("distance unit %q: %v, using %s", cfg.DistanceUnit, err, route.Miles)
		unit = route.Miles
	}

	hub := stream.NewHub(redisClient)
	feed := route.NewFeed()

	s := &Server{
		App:      app,
		Cfg:      cfg,
		Redis:    redisClient,
		Stream:   hub,
		Feed:     feed,
		Tracking: tracking.NewService(feed, hub, unit),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret))
	tracking.RegisterRoutes(s.App.Group("/run"), s.Tracking, jwtMiddleware)
	tracking.RegisterLocationRoutes(s.App.Group("/location"), s.Tracking)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}
