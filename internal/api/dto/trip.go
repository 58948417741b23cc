package dto

type InputRequest struct {
	Field string `json:"field"` // "origin" or "destination"
	Text  string `json:"text"`
}

type SuggestionResponse struct {
	DisplayText string `json:"display_text"`
	PlaceID     string `json:"place_id,omitempty"`
}

type SelectRequest struct {
	Field      string             `json:"field"`
	Suggestion SuggestionResponse `json:"suggestion"`
}

// SettingsRequest is a partial update; nil fields keep their current
// value.
type SettingsRequest struct {
	BaseMPG            *float64 `json:"base_mpg"`
	BaseWeight         *float64 `json:"base_weight"`
	MPGPenaltyPerPound *float64 `json:"mpg_penalty_per_pound"`
	FuelPricePerGallon *float64 `json:"fuel_price_per_gallon"`
	MilesPerDay        *float64 `json:"miles_per_day"`
	NightlyRate        *float64 `json:"nightly_rate"`
}

type LoadRequest struct {
	EmptyWeight *float64 `json:"empty_weight"`
	LoadWeight  *float64 `json:"load_weight"`
}

type NightsRequest struct {
	Nights int `json:"nights"`
}

type SettingsResponse struct {
	BaseMPG            float64 `json:"base_mpg"`
	BaseWeight         float64 `json:"base_weight"`
	MPGPenaltyPerPound float64 `json:"mpg_penalty_per_pound"`
	FuelPricePerGallon float64 `json:"fuel_price_per_gallon"`
	MilesPerDay        float64 `json:"miles_per_day"`
	NightlyRate        float64 `json:"nightly_rate"`
}

type LoadResponse struct {
	EmptyWeight      float64 `json:"empty_weight"`
	LoadWeight       float64 `json:"load_weight"`
	TotalWeight      float64 `json:"total_weight"`
	WithinLegalLimit bool    `json:"within_legal_limit"`
}

type RouteResponse struct {
	Origin           string       `json:"origin"`
	Destination      string       `json:"destination"`
	DistanceMiles    float64      `json:"distance_miles"`
	StatesTraversed  []string     `json:"states_traversed"`
	TollEstimate     *float64     `json:"toll_estimate,omitempty"`
	Geometry         [][2]float64 `json:"geometry,omitempty"`
	OriginCoord      *[2]float64  `json:"origin_coord,omitempty"`
	DestinationCoord *[2]float64  `json:"destination_coord,omitempty"`
}

type BreakdownResponse struct {
	DistanceMiles   float64 `json:"distance_miles"`
	FuelCost        float64 `json:"fuel_cost"`
	TollCost        float64 `json:"toll_cost"`
	OvernightCost   float64 `json:"overnight_cost"`
	TotalCost       float64 `json:"total_cost"`
	CostPerMile     float64 `json:"cost_per_mile"`
	NumberOfNights  int     `json:"number_of_nights"`
	SuggestedNights int     `json:"suggested_nights"`
	EffectiveMPG    float64 `json:"effective_mpg"`
}

type TripResponse struct {
	State                  string               `json:"state"`
	Origin                 string               `json:"origin"`
	Destination            string               `json:"destination"`
	OriginSuggestions      []SuggestionResponse `json:"origin_suggestions"`
	DestinationSuggestions []SuggestionResponse `json:"destination_suggestions"`
	Settings               SettingsResponse     `json:"settings"`
	Load                   LoadResponse         `json:"load"`
	EffectiveMPG           float64              `json:"effective_mpg"`
	UsingDefaultPrice      bool                 `json:"using_default_price"`
	NightsOverride         *int                 `json:"nights_override,omitempty"`
	Route                  *RouteResponse       `json:"route,omitempty"`
	Breakdown              *BreakdownResponse   `json:"breakdown,omitempty"`
	Error                  string               `json:"error,omitempty"`
}
