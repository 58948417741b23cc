package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/trent-alex/trucking-ROL/internal/api/dto"
	"github.com/trent-alex/trucking-ROL/internal/domain"
	"github.com/trent-alex/trucking-ROL/internal/ports"
	"github.com/trent-alex/trucking-ROL/internal/trip"
)

// TripsHandler persists and lists frozen trip snapshots.
type TripsHandler struct {
	Session *trip.Session
	Repo    ports.TripRepository
}

// Save freezes the current session into a SavedRoute record.
func (h *TripsHandler) Save(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.Session.Snapshot()
	if err != nil {
		writeError(w, r, http.StatusConflict, err.Error())
		return
	}

	if err := h.Repo.Save(r.Context(), snapshot); err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to save route")
		return
	}
	writeJSON(w, r, http.StatusCreated, toSavedRouteResponse(snapshot))
}

func (h *TripsHandler) List(w http.ResponseWriter, r *http.Request) {
	routes, err := h.Repo.ListRecent(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to list routes")
		return
	}

	resp := dto.ListSavedRoutesResponse{Routes: make([]dto.SavedRouteResponse, 0, len(routes))}
	for _, sr := range routes {
		resp.Routes = append(resp.Routes, toSavedRouteResponse(sr))
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func (h *TripsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid route id")
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "route not found")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "failed to delete route")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toSavedRouteResponse(sr *domain.SavedRoute) dto.SavedRouteResponse {
	return dto.SavedRouteResponse{
		ID:              sr.ID.String(),
		Origin:          sr.Origin,
		Destination:     sr.Destination,
		DistanceMiles:   sr.DistanceMiles,
		StatesTraversed: sr.StatesTraversed,
		OriginLat:       sr.OriginLat,
		OriginLon:       sr.OriginLon,
		DestinationLat:  sr.DestinationLat,
		DestinationLon:  sr.DestinationLon,
		FuelCost:        sr.FuelCost,
		TollCost:        sr.TollCost,
		OvernightCost:   sr.OvernightCost,
		TotalCost:       sr.TotalCost,
		CostPerMile:     sr.CostPerMile,
		NumberOfNights:  sr.NumberOfNights,
		EmptyWeight:     sr.EmptyWeight,
		LoadWeight:      sr.LoadWeight,
		BaseMPG:         sr.BaseMPG,
		EffectiveMPG:    sr.EffectiveMPG,
		FuelPrice:       sr.FuelPrice,
		NightlyRate:     sr.NightlyRate,
		SavedAt:         sr.SavedAt,
	}
}
