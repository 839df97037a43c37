// @title           PageHub API
// @version         1.0
// @host            localhost
// @schemes         http https
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"net/http"

	"pagehub/internal/api"
	"pagehub/internal/config"
	"pagehub/internal/database"
	"pagehub/internal/models"
	"pagehub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "pagehub/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	dbpool, err := pgxpool.New(ctx, cfg.DB.Source)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbpool.Close()

	if err := dbpool.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Connected to database")

	s3Storage, err := storage.NewS3Storage(ctx, cfg.AWS)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}
	log.Printf("Uploads will be stored in bucket %s", cfg.AWS.Bucket)

	store := database.NewStore(dbpool)

	if err := store.SeedAdmin(ctx, cfg.Admin); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	server := api.NewServer(cfg, store, s3Storage)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(api.MetricsMiddleware)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("https://localhost/swagger/doc.json"),
	))

	r.Get("/health", server.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/v1/auth/register", server.RegisterHandler)
	r.Post("/api/v1/auth/login", server.LoginHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(server.AuthMiddleware)

		r.Route("/users", func(r chi.Router) {
			r.With(api.RequireRole(models.RoleUser, models.RoleAdmin)).
				Put("/update-subscription", server.UpdateSubscriptionHandler)
			r.With(api.RequireRole(models.RoleUser, models.RoleAdmin)).
				Post("/subscription/status", server.SubscriptionStatusHandler)
			r.With(api.RequireRole(models.RoleUser, models.RoleAdmin)).
				Get("/{userId}/details", server.GetUserDetailsHandler)

			r.Group(func(r chi.Router) {
				r.Use(api.RequireRole(models.RoleAdmin))
				r.Get("/", server.ListUsersHandler)
				r.Put("/{userId}", server.UpdateUserDetailsHandler)
				r.Post("/reset-password/{userId}", server.ResetPasswordHandler)
				r.Put("/role/{userId}", server.UpdateRoleHandler)
				r.Put("/status/{userId}", server.UpdateStatusHandler)
			})
		})

		r.Route("/pages", func(r chi.Router) {
			r.Use(api.RequireRole(models.RoleUser, models.RoleAdmin))
			r.Post("/", server.CreatePageHandler)
			r.Get("/", server.ListPagesHandler)
			r.Get("/page/limit", server.PageLimitHandler)
			r.Post("/upload", server.UploadImageHandler)
			r.Delete("/delete/image", server.DeleteImageHandler)
			r.Get("/{id}", server.GetPageHandler)
			r.Put("/{id}", server.UpdatePageHandler)
			r.Delete("/{id}", server.DeletePageHandler)
		})
	})

	log.Printf("Starting server on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
