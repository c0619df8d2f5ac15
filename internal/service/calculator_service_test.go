package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportCarbon(t *testing.T) {
	svc := NewCalculatorService()

	result := svc.TransportCarbon(&TransportCarbonRequest{
		Method:        "car-gas",
		DistanceMiles: 10,
		DaysPerWeek:   5,
	})

	// 10 英里 × 5 天 × 0.411
	assert.InDelta(t, 20.55, result.WeeklyKg, 0.001)
	assert.InDelta(t, 1068.6, result.AnnualKg, 0.001)
	assert.Equal(t, "Moderate", result.Impact)
}

func TestTransportCarbonZeroEmissionMethods(t *testing.T) {
	svc := NewCalculatorService()

	for _, method := range []string{"bike", "walking"} {
		result := svc.TransportCarbon(&TransportCarbonRequest{
			Method:        method,
			DistanceMiles: 100,
			DaysPerWeek:   7,
		})
		assert.Zero(t, result.WeeklyKg)
		assert.Equal(t, "Excellent", result.Impact)
	}
}

func TestTransportImpactBands(t *testing.T) {
	svc := NewCalculatorService()

	cases := []struct {
		distance float64
		want     string
	}{
		{4, "Excellent"},   // 年排放 ~427
		{9, "Good"},        // ~962
		{18, "Moderate"},   // ~1923
		{20, "Needs Improvement"}, // ~2137
	}
	for _, tc := range cases {
		result := svc.TransportCarbon(&TransportCarbonRequest{
			Method:        "car-gas",
			DistanceMiles: tc.distance,
			DaysPerWeek:   5,
		})
		assert.Equal(t, tc.want, result.Impact, "distance %v", tc.distance)
	}
}

func TestEnergyCarbon(t *testing.T) {
	svc := NewCalculatorService()

	result := svc.EnergyCarbon(&EnergyCarbonRequest{
		ElectricityKWh: 1000,
		HeatingType:    "natural-gas",
		HeatingUsage:   100,
		HomeSizeSqFt:   1000,
	})

	// 1000×0.000371 + 100×0.0053 = 0.901
	assert.InDelta(t, 0.9, result.MonthlyKg, 0.01)
	assert.InDelta(t, 10.81, result.AnnualKg, 0.01)
	assert.Equal(t, "Excellent", result.Efficiency)
}

func TestEnergyCarbonWithoutHomeSize(t *testing.T) {
	svc := NewCalculatorService()

	result := svc.EnergyCarbon(&EnergyCarbonRequest{
		ElectricityKWh: 500,
		HeatingType:    "oil",
	})
	// 无面积时排放强度视为 0
	assert.Equal(t, "Excellent", result.Efficiency)
}

func TestDiningCarbonLocalDiscount(t *testing.T) {
	svc := NewCalculatorService()

	full := svc.DiningCarbon(&DiningCarbonRequest{
		MeatMeals:       10,
		VegetarianMeals: 5,
		VeganMeals:      2,
		FoodWasteMeals:  3,
	})
	// 10×2.5 + 5×0.8 + 2×0.4 + 3×0.5 = 31.3
	assert.InDelta(t, 31.3, full.WeeklyKg, 0.001)

	discounted := svc.DiningCarbon(&DiningCarbonRequest{
		MeatMeals:        10,
		VegetarianMeals:  5,
		VeganMeals:       2,
		FoodWasteMeals:   3,
		LocalFoodPercent: 50,
	})
	assert.InDelta(t, 15.65, discounted.WeeklyKg, 0.001)
}

func TestLifestyleCarbonRecyclingCap(t *testing.T) {
	svc := NewCalculatorService()

	base := svc.LifestyleCarbon(&LifestyleCarbonRequest{
		ShoppingTrips:      4,
		OnlineOrders:       10,
		ClothingItems:      2,
		ElectronicsPerYear: 1,
	})
	// 4×0.5 + 10×0.3 + 2×15 + 200/12 ≈ 51.67
	assert.InDelta(t, 51.67, base.MonthlyKg, 0.01)

	recycled := svc.LifestyleCarbon(&LifestyleCarbonRequest{
		ShoppingTrips:      4,
		OnlineOrders:       10,
		ClothingItems:      2,
		ElectronicsPerYear: 1,
		RecyclingPercent:   100,
	})
	// 100% 回收率也只抵扣 30%
	assert.InDelta(t, base.MonthlyKg*0.7, recycled.MonthlyKg, 0.01)
}

func TestEventImpactGreenScore(t *testing.T) {
	svc := NewCalculatorService()

	result := svc.EventImpact(&EventImpactRequest{
		Attendees:        100,
		DurationHours:    4,
		VenueType:        "outdoor",
		CarPercent:       20,
		LedPercent:       50,
		RenewablePercent: 50,
		RecyclingPercent: 80,
		DigitalPercent:   80,
	})

	// (100-20)×0.3 + 100×0.2 + 160×0.3 + 20 = 112 → 上限 100
	assert.Equal(t, 100, result.GreenScore)
	assert.Contains(t, result.Recommendations, "Excellent! Your event is very sustainable")
}

func TestEventImpactResourceEstimates(t *testing.T) {
	svc := NewCalculatorService()

	result := svc.EventImpact(&EventImpactRequest{
		Attendees:              100,
		DurationHours:          4,
		VenueType:              "indoor",
		CarPercent:             50,
		PublicTransportPercent: 30,
		LedPercent:             50,
		RenewablePercent:       0,
		RecyclingPercent:       40,
		DigitalPercent:         20,
	})

	// 交通: 100×0.5×0.411×10 + 100×0.3×0.089×10 = 205.5 + 26.7
	assert.InDelta(t, 232.2, result.TransportCO2Kg, 0.1)
	// 能耗: 800 - 800×0.5×0.3 = 680
	assert.InDelta(t, 680, result.EnergyKWh, 0.1)
	// 垃圾: 50 - 50×0.4×0.7 - 50×0.2×0.3 = 33
	assert.InDelta(t, 33, result.WasteKg, 0.1)
	// 用水: 室内不打折
	assert.InDelta(t, 500, result.WaterLiters, 0.1)
}

func TestEventImpactOutdoorWaterDiscount(t *testing.T) {
	svc := NewCalculatorService()

	result := svc.EventImpact(&EventImpactRequest{
		Attendees:     40,
		DurationHours: 2,
		VenueType:     "outdoor",
	})
	assert.InDelta(t, 140, result.WaterLiters, 0.1)
}

func TestEventImpactLowScoreRecommendations(t *testing.T) {
	svc := NewCalculatorService()

	result := svc.EventImpact(&EventImpactRequest{
		Attendees:     500,
		DurationHours: 8,
		VenueType:     "indoor",
		CarPercent:    100,
	})

	assert.Less(t, result.GreenScore, 50)
	assert.Contains(t, result.Recommendations, "Consider switching to a more sustainable venue")
	assert.Contains(t, result.Recommendations, "Provide shuttle services or public transport incentives")
	assert.Contains(t, result.Recommendations, "Use LED lighting and energy-efficient equipment")
	assert.Contains(t, result.Recommendations, "Use digital materials instead of printed materials")
}

func TestEventImpactScoreClampedAtZero(t *testing.T) {
	svc := NewCalculatorService()

	result := svc.EventImpact(&EventImpactRequest{
		Attendees:     10,
		DurationHours: 1,
		VenueType:     "indoor",
		CarPercent:    100,
	})
	// (100-100)×0.3 + 0 + 0 + 10 = 10
	assert.Equal(t, 10, result.GreenScore)
	assert.GreaterOrEqual(t, result.GreenScore, 0)
}
