package api

import (
	"net/http"

	"github.com/trent-alex/trucking-ROL/internal/api/handlers"
	"github.com/trent-alex/trucking-ROL/internal/ports"
	"github.com/trent-alex/trucking-ROL/internal/trip"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(session *trip.Session, repo ports.TripRepository) http.Handler {
	mux := http.NewServeMux()

	tripHandler := &handlers.TripHandler{Session: session}
	tripsHandler := &handlers.TripsHandler{Session: session, Repo: repo}

	mux.HandleFunc("GET /health", handlers.Health)

	mux.HandleFunc("POST /trip/input", tripHandler.Input)
	mux.HandleFunc("GET /trip/suggestions", tripHandler.Suggestions)
	mux.HandleFunc("POST /trip/select", tripHandler.Select)
	mux.HandleFunc("POST /trip/calculate", tripHandler.Calculate)
	mux.HandleFunc("GET /trip", tripHandler.Get)
	mux.HandleFunc("PATCH /trip/settings", tripHandler.UpdateSettings)
	mux.HandleFunc("PATCH /trip/load", tripHandler.UpdateLoad)
	mux.HandleFunc("PUT /trip/nights", tripHandler.SetNights)
	mux.HandleFunc("DELETE /trip/nights", tripHandler.ClearNights)
	mux.HandleFunc("POST /trip/reset", tripHandler.Reset)

	mux.HandleFunc("POST /trips", tripsHandler.Save)
	mux.HandleFunc("GET /trips", tripsHandler.List)
	mux.HandleFunc("DELETE /trips/{id}", tripsHandler.Delete)

	return loggingMiddleware(mux)
}
