package models

import (
	"time"

	"github.com/google/uuid"
)

// Sustainability holds the environmental/ethical attributes a product is
// scored on. The whole block may be absent on a product.
type Sustainability struct {
	RecyclableMaterial     bool    `json:"recyclableMaterial"`
	Biodegradable          bool    `json:"biodegradable"`
	PlasticFree            bool    `json:"plasticFree"`
	CarbonFootprint        float64 `json:"carbonFootprint"`
	CrueltyFree            bool    `json:"crueltyFree"`
	FairTradeCertified     bool    `json:"fairTradeCertified"`
	RenewableEnergyUsed    bool    `json:"renewableEnergyUsed"`
	EnergyEfficiencyRating *int    `json:"energyEfficiencyRating,omitempty"` // 1-5 when present
}

type Product struct {
	ID             uuid.UUID       `db:"id"`
	Name           string          `db:"name"`
	Brand          string          `db:"brand"`
	Category       string          `db:"category"`
	Price          float64         `db:"price"`
	Description    string          `db:"description"`
	Sustainability *Sustainability `db:"sustainability"`
	// Denormalized score, recomputed whenever the sustainability block changes
	SustainabilityScore int       `db:"sustainability_score"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}
