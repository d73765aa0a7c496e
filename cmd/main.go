package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"travelbuddy/internal/ai"
	"travelbuddy/internal/providers"
	"travelbuddy/internal/trip"
)

func main() {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// --- optional turn archive ---
	var archive trip.Archive
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatalf("db open error: %v", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db ping error: %v", err)
		}

		archive = trip.NewArchive(db)
		log.Println("turn archive enabled")
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// --- Trip module wiring ---
	llm := ai.NewOpenAIClient()
	enricher := trip.NewEnricher(
		providers.NewPlacesClient(),
		providers.NewYelpClient(),
		providers.NewWeatherClient(),
		llm,
	)
	svc := trip.NewService(trip.NewProfileStore(), trip.NewHistoryStore(), llm, enricher, archive)
	handler := trip.NewHandler(svc)

	trip.RegisterRoutes(r, handler)

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	log.Printf("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
