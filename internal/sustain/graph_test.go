package sustain

import (
	"testing"

	"ecocart/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGraphData_ShapeAndBounds(t *testing.T) {
	p1 := &models.Product{
		Name: "Alpha",
		Sustainability: &models.Sustainability{
			RecyclableMaterial:     true,
			PlasticFree:            true,
			CarbonFootprint:        1.5,
			EnergyEfficiencyRating: intPtr(5),
		},
	}
	p2 := &models.Product{
		Name: "Beta",
		Sustainability: &models.Sustainability{
			CarbonFootprint: 8,
		},
	}

	graph := BuildGraphData(p1, p2)

	require.Len(t, graph.Labels, 8)
	require.Len(t, graph.Datasets, 2)

	assert.Equal(t, "Alpha", graph.Datasets[0].Label)
	assert.Equal(t, "Beta", graph.Datasets[1].Label)

	for _, ds := range graph.Datasets {
		require.Len(t, ds.Data, 8)
		for i, v := range ds.Data {
			assert.GreaterOrEqual(t, v, 0, "category %s", graph.Labels[i])
			assert.LessOrEqual(t, v, 20, "category %s", graph.Labels[i])
		}
	}
}

func TestBuildGraphData_CategoryValues(t *testing.T) {
	p1 := &models.Product{
		Name: "Alpha",
		Sustainability: &models.Sustainability{
			RecyclableMaterial:     true,
			Biodegradable:          false,
			PlasticFree:            true,
			CarbonFootprint:        1,
			CrueltyFree:            true,
			FairTradeCertified:     false,
			RenewableEnergyUsed:    true,
			EnergyEfficiencyRating: intPtr(3),
		},
	}
	p2 := &models.Product{Name: "Beta"}

	graph := BuildGraphData(p1, p2)

	assert.Equal(t, []int{20, 0, 20, 20, 20, 0, 20, 12}, graph.Datasets[0].Data)
	// Product without a sustainability block scores zero everywhere
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0, 0}, graph.Datasets[1].Data)
}

func TestBuildGraphData_CarbonFootprintTiers(t *testing.T) {
	tests := []struct {
		cf       float64
		expected int
	}{
		{1, 20},
		{2, 15},
		{4, 10},
		{6, 5},
		{100, 5},
	}

	for _, tt := range tests {
		p := &models.Product{Name: "P", Sustainability: &models.Sustainability{CarbonFootprint: tt.cf}}
		graph := BuildGraphData(p, p)
		assert.Equal(t, tt.expected, graph.Datasets[0].Data[3], "cf=%v", tt.cf)
	}
}

func TestBuildGraphData_LabelsMatchFixedOrder(t *testing.T) {
	graph := BuildGraphData(&models.Product{Name: "A"}, &models.Product{Name: "B"})

	assert.Equal(t, []string{
		"Recyclable Material",
		"Biodegradable",
		"Plastic Free",
		"Carbon Footprint",
		"Cruelty Free",
		"Fair Trade",
		"Renewable Energy",
		"Energy Efficiency",
	}, graph.Labels)
}
