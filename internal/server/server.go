package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"fitbook/internal/appointment"
	"fitbook/internal/auth"
	"fitbook/internal/catalog"
	"fitbook/internal/config"
	"fitbook/internal/email"
	"fitbook/internal/trainer"
	"fitbook/internal/user"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	userRepo := user.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)
	trainerRepo := trainer.NewRepository(db)
	appointmentRepo := appointment.NewRepository(db)

	userHandler := user.NewHandler(user.NewService(userRepo, cfg.JWTSecret))
	catalogHandler := catalog.NewHandler(catalog.NewService(catalogRepo))
	trainerHandler := trainer.NewHandler(trainer.NewService(trainerRepo))
	appointmentHandler := appointment.NewHandler(appointment.NewService(
		appointmentRepo, catalogRepo, trainerRepo, userRepo, emailService, cfg.SlotGranularityMinutes,
	))

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.Refresh)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)

		protected.GET("/services", catalogHandler.ListServices)
		protected.GET("/services/:serviceID", catalogHandler.GetService)

		protected.GET("/trainers", trainerHandler.ListTrainers)
		protected.GET("/trainers/:trainerID", trainerHandler.GetTrainer)
		protected.GET("/trainers/:trainerID/slots", appointmentHandler.GetSlots)
		protected.GET("/trainers/available", appointmentHandler.GetAvailableTrainers)

		protected.POST("/appointments", appointmentHandler.Book)
		protected.GET("/appointments", appointmentHandler.List)
		protected.POST("/appointments/:appointmentID/cancel", appointmentHandler.Cancel)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole("admin"))
	{
		admin.POST("/services", catalogHandler.CreateService)
		admin.PUT("/services/:serviceID", catalogHandler.UpdateService)
		admin.DELETE("/services/:serviceID", catalogHandler.DeleteService)

		admin.POST("/trainers", trainerHandler.CreateTrainer)
		admin.PUT("/trainers/:trainerID", trainerHandler.UpdateTrainer)
		admin.DELETE("/trainers/:trainerID", trainerHandler.DeleteTrainer)
		admin.PUT("/trainers/:trainerID/working-hours", trainerHandler.SetWorkingHours)
		admin.DELETE("/trainers/:trainerID/working-hours/:day", trainerHandler.DeleteWorkingHours)
		admin.PUT("/trainers/:trainerID/expertise", trainerHandler.SetExpertise)

		admin.GET("/appointments/stats", appointmentHandler.GetStats)
		admin.POST("/appointments/:appointmentID/approve", appointmentHandler.Approve)
		admin.POST("/appointments/:appointmentID/complete", appointmentHandler.Complete)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
