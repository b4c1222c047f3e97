package sustain

import "ecocart/internal/models"

// GraphCategories is the fixed chart axis. Both datasets are aligned to it.
var GraphCategories = []string{
	"Recyclable Material",
	"Biodegradable",
	"Plastic Free",
	"Carbon Footprint",
	"Cruelty Free",
	"Fair Trade",
	"Renewable Energy",
	"Energy Efficiency",
}

// BuildGraphData shapes the per-category values of two products into
// chart-ready series. Every value lies in [0, 20].
func BuildGraphData(product1, product2 *models.Product) models.GraphData {
	return models.GraphData{
		Labels: GraphCategories,
		Datasets: []models.GraphDataset{
			{
				Label:           product1.Name,
				Data:            categoryValues(product1.Sustainability),
				BackgroundColor: "rgba(75, 192, 192, 0.7)",
				BorderColor:     "rgba(75, 192, 192, 1)",
				BorderWidth:     1,
			},
			{
				Label:           product2.Name,
				Data:            categoryValues(product2.Sustainability),
				BackgroundColor: "rgba(255, 159, 64, 0.7)",
				BorderColor:     "rgba(255, 159, 64, 1)",
				BorderWidth:     1,
			},
		},
	}
}

func categoryValues(attrs *models.Sustainability) []int {
	values := make([]int, len(GraphCategories))
	if attrs == nil {
		return values
	}

	values[0] = boolValue(attrs.RecyclableMaterial)
	values[1] = boolValue(attrs.Biodegradable)
	values[2] = boolValue(attrs.PlasticFree)
	values[3] = carbonFootprintValue(attrs.CarbonFootprint)
	values[4] = boolValue(attrs.CrueltyFree)
	values[5] = boolValue(attrs.FairTradeCertified)
	values[6] = boolValue(attrs.RenewableEnergyUsed)
	if attrs.EnergyEfficiencyRating != nil {
		values[7] = *attrs.EnergyEfficiencyRating * 4
	}

	return values
}

func boolValue(set bool) int {
	if set {
		return 20
	}
	return 0
}

// Same tier boundaries as the scorer, projected onto the 0-20 chart scale.
func carbonFootprintValue(cf float64) int {
	switch {
	case cf < 2:
		return 20
	case cf < 4:
		return 15
	case cf < 6:
		return 10
	default:
		return 5
	}
}
