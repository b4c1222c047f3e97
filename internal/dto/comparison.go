package dto

import "ecocart/internal/models"

type CompareRequest struct {
	ProductID1 string `json:"productId1" validate:"required"`
	ProductID2 string `json:"productId2" validate:"required"`
}

type ComparisonScores struct {
	Product1   int `json:"product1"`
	Product2   int `json:"product2"`
	Difference int `json:"difference"`
}

type ComparisonSummary struct {
	BestFor       string `json:"bestFor"`
	KeyDifference string `json:"keyDifference"`
}

// ComparisonResult is the full outcome of comparing two products. Winner is
// nil on a tie.
type ComparisonResult struct {
	Products        []ProductResponse               `json:"products"`
	Scores          ComparisonScores                `json:"scores"`
	Winner          *string                         `json:"winner"`
	Highlights      models.SustainabilityHighlights `json:"sustainabilityHighlights"`
	ComparisonGraph models.GraphData                `json:"comparisonGraph"`
	ExternalData    models.ComparisonExternalData   `json:"externalData"`
	Recommendations models.Recommendations          `json:"recommendations"`
	EcoDescription  string                          `json:"ecoDescription"`
	Summary         ComparisonSummary               `json:"summary"`
}

type ComparisonHistoryItem struct {
	ID              string                          `json:"id"`
	Products        []ProductResponse               `json:"products"`
	Scores          ComparisonScores                `json:"scores"`
	Winner          *string                         `json:"winner"`
	Highlights      models.SustainabilityHighlights `json:"sustainabilityHighlights"`
	ComparisonGraph models.GraphData                `json:"comparisonGraph"`
	ExternalData    models.ComparisonExternalData   `json:"externalData"`
	Recommendations models.Recommendations          `json:"recommendations"`
	CreatedAt       string                          `json:"createdAt"`
}

type MostComparedProduct struct {
	Product ProductResponse `json:"product"`
	Count   int64           `json:"count"`
}

type TrendPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type ComparisonStats struct {
	TotalComparisons       int64                 `json:"totalComparisons"`
	MostComparedProducts   []MostComparedProduct `json:"mostComparedProducts"`
	Last7DaysTrend         []TrendPoint          `json:"last7DaysTrend"`
	AverageScoreDifference float64               `json:"averageScoreDifference"`
}
