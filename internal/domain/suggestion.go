package domain

// Suggestion is the normalized place-completion shape. Both provider
// schemas (title/subtitle and description/id) collapse into this.
type Suggestion struct {
	DisplayText string
	PlaceID     string
}
