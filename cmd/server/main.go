package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/trent-alex/trucking-ROL/internal/adapters/cache"
	"github.com/trent-alex/trucking-ROL/internal/adapters/fuelprice"
	"github.com/trent-alex/trucking-ROL/internal/adapters/googlemaps"
	"github.com/trent-alex/trucking-ROL/internal/adapters/ors"
	"github.com/trent-alex/trucking-ROL/internal/adapters/repositories"
	"github.com/trent-alex/trucking-ROL/internal/api"
	"github.com/trent-alex/trucking-ROL/internal/config"
	"github.com/trent-alex/trucking-ROL/internal/ports"
	"github.com/trent-alex/trucking-ROL/internal/trip"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Google Routes or ORS) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	port := config.Get("PORT", "8080")
	providerName := config.Get("ROUTE_PROVIDER", "google")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := repositories.InitSchema(db); err != nil {
		log.Fatal(err)
	}

	provider, searcher, err := buildProvider(providerName, db)
	if err != nil {
		log.Fatal(err)
	}

	session := trip.NewSession(provider, searcher)
	seedFuelPrice(session)

	repo := repositories.NewSqliteTripRepository(db)
	router := api.NewRouter(session, repo)

	// Timeouts are tuned for route fetches against external APIs.
	log.Printf("Server listening addr=:%s provider=%s", port, providerName)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// buildProvider selects the routing backend. Google carries toll
// estimates; ORS carries route geometry and truck profiles.
func buildProvider(name string, db *sql.DB) (ports.RouteProvider, ports.PlaceSearcher, error) {
	switch strings.ToLower(name) {
	case "google":
		key := os.Getenv("GOOGLE_MAPS_API_KEY")
		if strings.TrimSpace(key) == "" {
			return nil, nil, fmt.Errorf("GOOGLE_MAPS_API_KEY is required for the google provider")
		}
		p, err := googlemaps.New(key)
		if err != nil {
			return nil, nil, err
		}
		return p, p, nil
	case "ors":
		key := os.Getenv("ORS_API_KEY")
		if strings.TrimSpace(key) == "" {
			return nil, nil, fmt.Errorf("ORS_API_KEY is required for the ors provider")
		}
		p, err := ors.New(key, cache.NewSqliteGeocodeCache(db))
		if err != nil {
			return nil, nil, err
		}
		return p, p, nil
	default:
		return nil, nil, fmt.Errorf("unknown ROUTE_PROVIDER %q (want google or ors)", name)
	}
}

// seedFuelPrice asks the EIA feed once at startup. A failed or missing
// feed leaves the session on its default price.
func seedFuelPrice(session *trip.Session) {
	var feed ports.PriceFeed = fuelprice.New(os.Getenv("EIA_API_KEY"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	price, ok := feed.DieselPricePerGallon(ctx)
	if !ok {
		log.Println("Fuel price feed unavailable, using default diesel price")
		return
	}
	session.ApplyFeedPrice(price)
	log.Printf("Fuel price applied source=eia price=%.3f", price)
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
