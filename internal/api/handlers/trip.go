package handlers

import (
	"errors"
	"net/http"

	"github.com/trent-alex/trucking-ROL/internal/api/dto"
	"github.com/trent-alex/trucking-ROL/internal/costmodel"
	"github.com/trent-alex/trucking-ROL/internal/domain"
	"github.com/trent-alex/trucking-ROL/internal/trip"
)

// TripHandler exposes the single trip session over HTTP.
type TripHandler struct {
	Session *trip.Session
}

func parseField(s string) (trip.Field, bool) {
	switch s {
	case "origin":
		return trip.FieldOrigin, true
	case "destination":
		return trip.FieldDestination, true
	default:
		return 0, false
	}
}

// Input records an address edit and schedules a debounced suggestion
// lookup; clients poll Suggestions (or Get) for results.
func (h *TripHandler) Input(w http.ResponseWriter, r *http.Request) {
	var req dto.InputRequest
	if !decodeBody(w, r, &req) {
		return
	}

	field, ok := parseField(req.Field)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "field must be origin or destination")
		return
	}

	h.Session.EditInput(field, req.Text)
	w.WriteHeader(http.StatusAccepted)
}

func (h *TripHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	field, ok := parseField(r.URL.Query().Get("field"))
	if !ok {
		writeError(w, r, http.StatusBadRequest, "field must be origin or destination")
		return
	}

	v := h.Session.View()
	suggestions := v.OriginSuggestions
	if field == trip.FieldDestination {
		suggestions = v.DestinationSuggestions
	}

	out := make([]dto.SuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, dto.SuggestionResponse{DisplayText: s.DisplayText, PlaceID: s.PlaceID})
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (h *TripHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	field, ok := parseField(req.Field)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "field must be origin or destination")
		return
	}
	if req.Suggestion.DisplayText == "" {
		writeError(w, r, http.StatusBadRequest, "suggestion display_text is required")
		return
	}

	h.Session.Select(field, domain.Suggestion{
		DisplayText: req.Suggestion.DisplayText,
		PlaceID:     req.Suggestion.PlaceID,
	})
	h.writeTrip(w, r)
}

// Calculate runs a route fetch synchronously and returns the resulting
// session state. Provider failures map to 502 with the typed message.
func (h *TripHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	err := h.Session.Calculate(r.Context())
	switch {
	case err == nil:
		h.writeTrip(w, r)
	case errors.Is(err, trip.ErrMissingAddress):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, trip.ErrFetchInProgress):
		writeError(w, r, http.StatusConflict, err.Error())
	default:
		writeError(w, r, http.StatusBadGateway, err.Error())
	}
}

func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeTrip(w, r)
}

func (h *TripHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.SettingsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	settings := h.Session.View().Settings
	if req.BaseMPG != nil {
		settings.BaseMPG = *req.BaseMPG
	}
	if req.BaseWeight != nil {
		settings.BaseWeight = *req.BaseWeight
	}
	if req.MPGPenaltyPerPound != nil {
		settings.MPGPenaltyPerPound = *req.MPGPenaltyPerPound
	}
	if req.FuelPricePerGallon != nil {
		settings.FuelPricePerGallon = *req.FuelPricePerGallon
	}
	if req.MilesPerDay != nil {
		settings.MilesPerDay = *req.MilesPerDay
	}
	if req.NightlyRate != nil {
		settings.NightlyRate = *req.NightlyRate
	}

	if err := h.Session.UpdateSettings(settings); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, trip.ErrFetchInProgress) {
			status = http.StatusConflict
		}
		writeError(w, r, status, err.Error())
		return
	}
	h.writeTrip(w, r)
}

func (h *TripHandler) UpdateLoad(w http.ResponseWriter, r *http.Request) {
	var req dto.LoadRequest
	if !decodeBody(w, r, &req) {
		return
	}

	load := h.Session.View().Load
	if req.EmptyWeight != nil {
		load.EmptyWeight = *req.EmptyWeight
	}
	if req.LoadWeight != nil {
		load.LoadWeight = *req.LoadWeight
	}

	if load.EmptyWeight < costmodel.MinTruckWeight {
		writeError(w, r, http.StatusBadRequest, "empty weight below minimum truck weight")
		return
	}
	if load.TotalWeight() > costmodel.MaxLegalWeight {
		writeError(w, r, http.StatusBadRequest, "total weight exceeds the federal 80000 lb limit")
		return
	}

	if err := h.Session.UpdateLoad(load); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, trip.ErrFetchInProgress) {
			status = http.StatusConflict
		}
		writeError(w, r, status, err.Error())
		return
	}
	h.writeTrip(w, r)
}

func (h *TripHandler) SetNights(w http.ResponseWriter, r *http.Request) {
	var req dto.NightsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.Session.SetNightsOverride(req.Nights); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, trip.ErrFetchInProgress) {
			status = http.StatusConflict
		}
		writeError(w, r, status, err.Error())
		return
	}
	h.writeTrip(w, r)
}

func (h *TripHandler) ClearNights(w http.ResponseWriter, r *http.Request) {
	if err := h.Session.ClearNightsOverride(); err != nil {
		writeError(w, r, http.StatusConflict, err.Error())
		return
	}
	h.writeTrip(w, r)
}

func (h *TripHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.Session.Reset()
	h.writeTrip(w, r)
}

func (h *TripHandler) writeTrip(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, toTripResponse(h.Session.View()))
}

func toTripResponse(v trip.View) dto.TripResponse {
	resp := dto.TripResponse{
		State:                  v.State.String(),
		Origin:                 v.Origin,
		Destination:            v.Destination,
		OriginSuggestions:      toSuggestionResponses(v.OriginSuggestions),
		DestinationSuggestions: toSuggestionResponses(v.DestinationSuggestions),
		Settings: dto.SettingsResponse{
			BaseMPG:            v.Settings.BaseMPG,
			BaseWeight:         v.Settings.BaseWeight,
			MPGPenaltyPerPound: v.Settings.MPGPenaltyPerPound,
			FuelPricePerGallon: v.Settings.FuelPricePerGallon,
			MilesPerDay:        v.Settings.MilesPerDay,
			NightlyRate:        v.Settings.NightlyRate,
		},
		Load: dto.LoadResponse{
			EmptyWeight:      v.Load.EmptyWeight,
			LoadWeight:       v.Load.LoadWeight,
			TotalWeight:      v.Load.TotalWeight(),
			WithinLegalLimit: v.Load.TotalWeight() <= costmodel.MaxLegalWeight,
		},
		EffectiveMPG:      v.EffectiveMPG,
		UsingDefaultPrice: v.UsingDefaultPrice,
		NightsOverride:    v.NightsOverride,
		Error:             v.ErrorMessage,
	}

	if v.Route != nil {
		route := &dto.RouteResponse{
			Origin:          v.Route.Origin,
			Destination:     v.Route.Destination,
			DistanceMiles:   v.Route.DistanceMiles,
			StatesTraversed: v.Route.StatesTraversed,
		}
		if v.Route.Tolls != nil {
			cost := v.Route.Tolls.EstimatedCost
			route.TollEstimate = &cost
		}
		for _, pt := range v.Route.Geometry {
			route.Geometry = append(route.Geometry, [2]float64{pt.Lon(), pt.Lat()})
		}
		if v.Route.OriginCoord != nil {
			route.OriginCoord = &[2]float64{v.Route.OriginCoord.Lon(), v.Route.OriginCoord.Lat()}
		}
		if v.Route.DestinationCoord != nil {
			route.DestinationCoord = &[2]float64{v.Route.DestinationCoord.Lon(), v.Route.DestinationCoord.Lat()}
		}
		resp.Route = route

		resp.Breakdown = &dto.BreakdownResponse{
			DistanceMiles:   v.Breakdown.DistanceMiles,
			FuelCost:        v.Breakdown.FuelCost,
			TollCost:        v.Breakdown.TollCost,
			OvernightCost:   v.Breakdown.OvernightCost,
			TotalCost:       v.Breakdown.TotalCost(),
			CostPerMile:     v.Breakdown.CostPerMile(),
			NumberOfNights:  v.Breakdown.NumberOfNights,
			SuggestedNights: v.Breakdown.SuggestedNights,
			EffectiveMPG:    v.Breakdown.EffectiveMPG,
		}
	}

	return resp
}

func toSuggestionResponses(in []domain.Suggestion) []dto.SuggestionResponse {
	out := make([]dto.SuggestionResponse, 0, len(in))
	for _, s := range in {
		out = append(out, dto.SuggestionResponse{DisplayText: s.DisplayText, PlaceID: s.PlaceID})
	}
	return out
}
