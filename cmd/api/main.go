package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mergington/activities/docs"
	"github.com/mergington/activities/internal/activity"
	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/database"
	mw "github.com/mergington/activities/pkg/middleware"
)

// @title        Mergington High School Activities API
// @version      1.0
// @description  API for viewing extracurricular activities and managing signups.
// @BasePath     /
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Pick the activity store: Postgres when configured, otherwise the
	// seeded in-memory roster
	var store activity.Store
	if cfg.DatabaseURL != "" {
		db, err := database.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		log.Println("Connected to database successfully")
		store = activity.NewRepository(db)
	} else {
		log.Println("No DATABASE_URL set, using in-memory store with default roster")
		store = activity.NewSeededMemStore()
	}

	// Activity feature
	activityService := activity.NewService(store)
	activityHandler := activity.NewHandler(activityService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(mw.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// The landing page lives under /static; the root redirects there
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	r.Mount("/activities", activityHandler.Routes())

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
