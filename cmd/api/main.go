package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"brrrrleads/internal/config"
	"brrrrleads/internal/database"
	"brrrrleads/internal/domain/admin"
	"brrrrleads/internal/domain/checklist"
	"brrrrleads/internal/domain/events"
	"brrrrleads/internal/domain/forms"
	"brrrrleads/internal/domain/intake"
	"brrrrleads/internal/domain/session"
	"brrrrleads/internal/middleware"
	jwtsvc "brrrrleads/internal/pkg/jwt"
	"brrrrleads/internal/pkg/webhook"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := intake.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}
	if err := checklist.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	sessionStore := newSessionStore(cfg)

	sessionJWT := jwtsvc.New(cfg.JWTSecret, cfg.SessionTTL)
	adminJWT := jwtsvc.New(cfg.JWTSecret, cfg.AdminTokenTTL)

	pricingClient := webhook.New(cfg.PricingWebhookURL)
	contactClient := webhook.New(cfg.ContactWebhookURL)

	hub := events.NewHub()

	sessionService := session.NewService(sessionStore, sessionJWT, cfg.SessionTTL)
	sessionHandler := session.NewHandler(sessionService)

	intakeService := intake.NewService(intake.NewRepository(db), pricingClient, hub)
	intakeHandler := intake.NewHandler(intakeService, sessionService)

	checklistService := checklist.NewService(
		checklist.NewRepository(db), contactClient, hub, cfg.ChecklistDownloadURL,
	)
	checklistHandler := checklist.NewHandler(checklistService)

	adminService := admin.NewService(cfg.AdminEmail, cfg.AdminPasswordHash, adminJWT)
	adminHandler := admin.NewHandler(adminService)

	eventsHandler := events.NewHandler(hub, adminJWT)
	formsHandler := forms.NewHandler(cfg.ChecklistDownloadURL)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		public := v1.Group("/")
		public.Use(middleware.VisitorSession(sessionJWT))
		{
			forms.RegisterRoutes(public, formsHandler)
			session.RegisterRoutes(public, sessionHandler)
			intake.RegisterPublicRoutes(public, intakeHandler)
			checklist.RegisterPublicRoutes(public, checklistHandler)
		}

		admin.RegisterRoutes(v1, adminHandler)
		events.RegisterRoutes(v1, eventsHandler)

		// protected (ops dashboard)
		protected := v1.Group("/admin")
		protected.Use(middleware.AdminAuth(adminJWT))
		{
			intake.RegisterAdminRoutes(protected, intakeHandler)
			checklist.RegisterAdminRoutes(protected, checklistHandler)
		}
	}

	log.Printf("listening on :%s env=%s", cfg.Port, cfg.AppEnv)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func newSessionStore(cfg *config.Config) session.Store {
	if cfg.RedisAddr == "" {
		return session.NewMemoryStore()
	}

	store := session.NewRedisStore(session.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		log.Fatal(err)
	}

	return store
}
