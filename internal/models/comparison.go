package models

import (
	"time"

	"github.com/google/uuid"
)

// SustainabilityHighlights carries the advantage lists of both compared products.
type SustainabilityHighlights struct {
	Product1Advantages []string `json:"product1Advantages"`
	Product2Advantages []string `json:"product2Advantages"`
}

// GraphDataset is one chart-ready series, aligned to GraphData.Labels.
type GraphDataset struct {
	Label           string `json:"label"`
	Data            []int  `json:"data"`
	BackgroundColor string `json:"backgroundColor"`
	BorderColor     string `json:"borderColor"`
	BorderWidth     int    `json:"borderWidth"`
}

type GraphData struct {
	Labels   []string       `json:"labels"`
	Datasets []GraphDataset `json:"datasets"`
}

// ExternalProduct is the bounded set of fields extracted from an
// Open Food Facts lookup. Nil when the lookup failed or matched nothing.
type ExternalProduct struct {
	ProductName         string   `json:"productName"`
	Ecoscore            float64  `json:"ecoscore"`
	EcoscoreGrade       string   `json:"ecoscoreGrade"`
	Packaging           string   `json:"packaging"`
	Labels              []string `json:"labels"`
	AdditivesCount      int      `json:"additives"`
	Origins             string   `json:"origins"`
	ManufacturingPlaces string   `json:"manufacturingPlaces"`
	Description         string   `json:"description"`
}

type ComparisonExternalData struct {
	Product1 *ExternalProduct `json:"product1"`
	Product2 *ExternalProduct `json:"product2"`
}

type Recommendations struct {
	General             []string `json:"general"`
	Product1Suggestions []string `json:"product1Suggestions"`
	Product2Suggestions []string `json:"product2Suggestions"`
}

// Comparison is the persisted record of one comparison run. Immutable once
// created; records expire 30 days after creation (enforced by the repository).
type Comparison struct {
	ID              uuid.UUID                `db:"id"`
	UserID          uuid.UUID                `db:"user_id"`
	ProductID1      uuid.UUID                `db:"product_id1"`
	ProductID2      uuid.UUID                `db:"product_id2"`
	Product1Score   int                      `db:"product1_score"`
	Product2Score   int                      `db:"product2_score"`
	WinnerID        *uuid.UUID               `db:"winner_id"`
	ScoreDifference int                      `db:"score_difference"`
	Highlights      SustainabilityHighlights `db:"highlights"`
	Graph           GraphData                `db:"graph"`
	ExternalData    ComparisonExternalData   `db:"external_data"`
	Recommendations Recommendations          `db:"recommendations"`
	CreatedAt       time.Time                `db:"created_at"`
}
