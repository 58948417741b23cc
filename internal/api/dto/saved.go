package dto

import "time"

type SavedRouteResponse struct {
	ID              string    `json:"id"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	DistanceMiles   float64   `json:"distance_miles"`
	StatesTraversed []string  `json:"states_traversed"`
	OriginLat       float64   `json:"origin_lat"`
	OriginLon       float64   `json:"origin_lon"`
	DestinationLat  float64   `json:"destination_lat"`
	DestinationLon  float64   `json:"destination_lon"`
	FuelCost        float64   `json:"fuel_cost"`
	TollCost        float64   `json:"toll_cost"`
	OvernightCost   float64   `json:"overnight_cost"`
	TotalCost       float64   `json:"total_cost"`
	CostPerMile     float64   `json:"cost_per_mile"`
	NumberOfNights  int       `json:"number_of_nights"`
	EmptyWeight     float64   `json:"empty_weight"`
	LoadWeight      float64   `json:"load_weight"`
	BaseMPG         float64   `json:"base_mpg"`
	EffectiveMPG    float64   `json:"effective_mpg"`
	FuelPrice       float64   `json:"fuel_price"`
	NightlyRate     float64   `json:"nightly_rate"`
	SavedAt         time.Time `json:"saved_at"`
}

type ListSavedRoutesResponse struct {
	Routes []SavedRouteResponse `json:"routes"`
}
