package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/time/rate"

	"github.com/vedran77/devconnect/internal/config"
	"github.com/vedran77/devconnect/internal/database"
	"github.com/vedran77/devconnect/internal/metrics"
	mongorepo "github.com/vedran77/devconnect/internal/repository/mongodb"
	"github.com/vedran77/devconnect/internal/service"
	"github.com/vedran77/devconnect/internal/transport/http/handlers"
	"github.com/vedran77/devconnect/internal/transport/http/middleware"
)

func main() {
	cfg := config.Load()

	// Database
	client, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())
	log.Println("Connected to MongoDB")

	db := client.Database(cfg.DBName)

	// Repositories
	userRepo := mongorepo.NewUserRepo(db)
	profileRepo := mongorepo.NewProfileRepo(db)

	// Services
	tokenService := service.NewTokenService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, tokenService)
	profileService := service.NewProfileService(profileRepo, userRepo)
	githubService := service.NewGithubService()

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService, githubService)

	// Auth middleware
	auth := middleware.Auth(tokenService)

	// Per-IP limiter for the public credential endpoints
	limiter := middleware.NewRateLimiter(rate.Limit(10.0/60.0), 10)
	defer limiter.Stop()

	collector := metrics.NewCollector()

	// Routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.Handle("GET /metrics", collector.Handler())

	// Public
	mux.Handle("POST /api/users", limiter.Limit(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /api/auth", limiter.Limit(http.HandlerFunc(authHandler.Login)))
	mux.HandleFunc("GET /api/profile", profileHandler.List)
	mux.HandleFunc("GET /api/profile/user/{user_id}", profileHandler.GetByUserID)
	mux.HandleFunc("GET /api/profile/github/{username}", profileHandler.GithubRepos)

	// Protected
	mux.Handle("GET /api/auth", auth(http.HandlerFunc(authHandler.Me)))
	mux.Handle("GET /api/profile/me", auth(http.HandlerFunc(profileHandler.GetMine)))
	mux.Handle("POST /api/profile", auth(http.HandlerFunc(profileHandler.CreateOrUpdate)))
	mux.Handle("DELETE /api/profile", auth(http.HandlerFunc(profileHandler.DeleteAccount)))
	mux.Handle("PUT /api/profile/experience", auth(http.HandlerFunc(profileHandler.AddExperience)))
	mux.Handle("DELETE /api/profile/experience/{exp_id}", auth(http.HandlerFunc(profileHandler.RemoveExperience)))
	mux.Handle("PUT /api/profile/education", auth(http.HandlerFunc(profileHandler.AddEducation)))
	mux.Handle("DELETE /api/profile/education/{edu_id}", auth(http.HandlerFunc(profileHandler.RemoveEducation)))

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	handler := middleware.CORS(middleware.Logging(logger)(collector.Middleware(mux)))

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
