package entities

import "time"

// Offer is a value-equation breakdown of the product being advertised.
type Offer struct {
	OfferID             string
	Name                string
	ProductName         string
	DreamOutcome        string
	PerceivedLikelihood string
	TimeDelay           string
	EffortSacrifice     string
	Summary             string
	KeySellingPoints    []string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
