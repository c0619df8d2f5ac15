package service

import "math"

// 排放系数取自常见公开数据，单位见各 map 注释
var (
	// kg CO2 / 英里
	transportFactors = map[string]float64{
		"car-gas":      0.411,
		"car-hybrid":   0.247,
		"car-electric": 0.053,
		"motorcycle":   0.228,
		"bus":          0.089,
		"train":        0.041,
		"bike":         0,
		"walking":      0,
	}

	// 电力 kg CO2/kWh，其余按取暖燃料计量单位
	energyFactors = map[string]float64{
		"electricity": 0.000371,
		"natural-gas": 0.0053,
		"oil":         0.00268,
		"propane":     0.00162,
		"wood":        0.0003,
	}

	// kg CO2 / 餐
	foodFactors = map[string]float64{
		"meat":       2.5,
		"vegetarian": 0.8,
		"vegan":      0.4,
		"waste":      0.5,
	}

	// 消费行为排放
	lifestyleFactors = map[string]float64{
		"shopping-trip": 0.5,
		"online-order":  0.3,
		"clothing-item": 15,
		"electronics":   200,
	}
)

// CalculatorService 无状态的碳足迹/活动影响计算器，不依赖存储
type CalculatorService struct{}

func NewCalculatorService() *CalculatorService {
	return &CalculatorService{}
}

type TransportCarbonRequest struct {
	Method        string  `json:"method" binding:"required,oneof=car-gas car-hybrid car-electric motorcycle bus train bike walking"`
	DistanceMiles float64 `json:"distanceMiles" binding:"required,gt=0"`
	DaysPerWeek   int     `json:"daysPerWeek" binding:"required,gte=1,lte=7"`
}

type TransportCarbonResult struct {
	WeeklyKg float64 `json:"weeklyKg"`
	AnnualKg float64 `json:"annualKg"`
	Impact   string  `json:"impact"`
}

type EnergyCarbonRequest struct {
	ElectricityKWh float64 `json:"electricityKWh" binding:"omitempty,gte=0"`
	HeatingType    string  `json:"heatingType" binding:"required,oneof=natural-gas oil propane wood"`
	HeatingUsage   float64 `json:"heatingUsage" binding:"omitempty,gte=0"`
	HomeSizeSqFt   float64 `json:"homeSizeSqFt" binding:"omitempty,gte=0"`
}

type EnergyCarbonResult struct {
	MonthlyKg  float64 `json:"monthlyKg"`
	AnnualKg   float64 `json:"annualKg"`
	Efficiency string  `json:"efficiency"`
}

type DiningCarbonRequest struct {
	MeatMeals        int `json:"meatMeals" binding:"omitempty,gte=0"`
	VegetarianMeals  int `json:"vegetarianMeals" binding:"omitempty,gte=0"`
	VeganMeals       int `json:"veganMeals" binding:"omitempty,gte=0"`
	FoodWasteMeals   int `json:"foodWasteMeals" binding:"omitempty,gte=0"`
	LocalFoodPercent int `json:"localFoodPercent" binding:"omitempty,gte=0,lte=100"`
}

type DiningCarbonResult struct {
	WeeklyKg float64 `json:"weeklyKg"`
	AnnualKg float64 `json:"annualKg"`
	Impact   string  `json:"impact"`
}

type LifestyleCarbonRequest struct {
	ShoppingTrips      int `json:"shoppingTrips" binding:"omitempty,gte=0"`
	OnlineOrders       int `json:"onlineOrders" binding:"omitempty,gte=0"`
	ClothingItems      int `json:"clothingItems" binding:"omitempty,gte=0"`
	ElectronicsPerYear int `json:"electronicsPerYear" binding:"omitempty,gte=0"`
	RecyclingPercent   int `json:"recyclingPercent" binding:"omitempty,gte=0,lte=100"`
}

type LifestyleCarbonResult struct {
	MonthlyKg float64 `json:"monthlyKg"`
	AnnualKg  float64 `json:"annualKg"`
	Impact    string  `json:"impact"`
}

type EventImpactRequest struct {
	Attendees              int    `json:"attendees" binding:"required,gt=0"`
	DurationHours          int    `json:"durationHours" binding:"required,gt=0"`
	VenueType              string `json:"venueType" binding:"required,oneof=indoor outdoor"`
	CarPercent             int    `json:"carPercent" binding:"omitempty,gte=0,lte=100"`
	PublicTransportPercent int    `json:"publicTransportPercent" binding:"omitempty,gte=0,lte=100"`
	LedPercent             int    `json:"ledPercent" binding:"omitempty,gte=0,lte=100"`
	RenewablePercent       int    `json:"renewablePercent" binding:"omitempty,gte=0,lte=100"`
	RecyclingPercent       int    `json:"recyclingPercent" binding:"omitempty,gte=0,lte=100"`
	DigitalPercent         int    `json:"digitalPercent" binding:"omitempty,gte=0,lte=100"`
}

type EventImpactResult struct {
	GreenScore      int      `json:"greenScore"`
	TransportCO2Kg  float64  `json:"transportCo2Kg"`
	EnergyKWh       float64  `json:"energyKWh"`
	WasteKg         float64  `json:"wasteKg"`
	WaterLiters     float64  `json:"waterLiters"`
	Recommendations []string `json:"recommendations"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func impactBand(annual float64, excellent, good, moderate float64) string {
	switch {
	case annual < excellent:
		return "Excellent"
	case annual < good:
		return "Good"
	case annual < moderate:
		return "Moderate"
	default:
		return "Needs Improvement"
	}
}

func (s *CalculatorService) TransportCarbon(req *TransportCarbonRequest) TransportCarbonResult {
	weekly := req.DistanceMiles * float64(req.DaysPerWeek) * transportFactors[req.Method]
	annual := weekly * 52

	return TransportCarbonResult{
		WeeklyKg: round2(weekly),
		AnnualKg: round2(annual),
		Impact:   impactBand(annual, 500, 1000, 2000),
	}
}

// EnergyCarbon 按每平方英尺年排放评级，未提供面积时视为零强度
func (s *CalculatorService) EnergyCarbon(req *EnergyCarbonRequest) EnergyCarbonResult {
	monthly := req.ElectricityKWh*energyFactors["electricity"] +
		req.HeatingUsage*energyFactors[req.HeatingType]
	annual := monthly * 12

	perSqFt := 0.0
	if req.HomeSizeSqFt > 0 {
		perSqFt = annual / req.HomeSizeSqFt
	}

	return EnergyCarbonResult{
		MonthlyKg:  round2(monthly),
		AnnualKg:   round2(annual),
		Efficiency: impactBand(perSqFt, 0.5, 1.0, 1.5),
	}
}

func (s *CalculatorService) DiningCarbon(req *DiningCarbonRequest) DiningCarbonResult {
	weekly := float64(req.MeatMeals)*foodFactors["meat"] +
		float64(req.VegetarianMeals)*foodFactors["vegetarian"] +
		float64(req.VeganMeals)*foodFactors["vegan"] +
		float64(req.FoodWasteMeals)*foodFactors["waste"]

	// 本地食材按比例抵扣
	weekly *= float64(100-req.LocalFoodPercent) / 100
	annual := weekly * 52

	return DiningCarbonResult{
		WeeklyKg: round2(weekly),
		AnnualKg: round2(annual),
		Impact:   impactBand(annual, 500, 800, 1200),
	}
}

// LifestyleCarbon 回收率最多抵扣 30%，电子产品排放摊到 12 个月
func (s *CalculatorService) LifestyleCarbon(req *LifestyleCarbonRequest) LifestyleCarbonResult {
	monthly := float64(req.ShoppingTrips)*lifestyleFactors["shopping-trip"] +
		float64(req.OnlineOrders)*lifestyleFactors["online-order"] +
		float64(req.ClothingItems)*lifestyleFactors["clothing-item"] +
		float64(req.ElectronicsPerYear)*lifestyleFactors["electronics"]/12

	monthly *= 1 - float64(req.RecyclingPercent)/100*0.3
	annual := monthly * 12

	return LifestyleCarbonResult{
		MonthlyKg: round2(monthly),
		AnnualKg:  round2(annual),
		Impact:    impactBand(annual, 300, 600, 1000),
	}
}

// EventImpact 活动绿色评分与资源消耗估算。
// 交通按 10 英里平均通勤，能耗基准 2 kWh/人/小时，
// 垃圾基准 0.5 kg/人，用水基准 5 L/人（户外场地打七折）
func (s *CalculatorService) EventImpact(req *EventImpactRequest) EventImpactResult {
	attendees := float64(req.Attendees)

	carCO2 := attendees * float64(req.CarPercent) / 100 * transportFactors["car-gas"] * 10
	busCO2 := attendees * float64(req.PublicTransportPercent) / 100 * transportFactors["bus"] * 10
	transportCO2 := carCO2 + busCO2

	baseEnergy := attendees * float64(req.DurationHours) * 2
	energy := baseEnergy -
		baseEnergy*float64(req.LedPercent)/100*0.3 -
		baseEnergy*float64(req.RenewablePercent)/100*0.8

	baseWaste := attendees * 0.5
	waste := baseWaste -
		baseWaste*float64(req.RecyclingPercent)/100*0.7 -
		baseWaste*float64(req.DigitalPercent)/100*0.3

	water := attendees * 5
	if req.VenueType == "outdoor" {
		water *= 0.7
	}

	score := float64(100-req.CarPercent)*0.3 +
		float64(req.LedPercent+req.RenewablePercent)*0.2 +
		float64(req.RecyclingPercent+req.DigitalPercent)*0.3
	if req.VenueType == "outdoor" {
		score += 20
	} else {
		score += 10
	}
	score = math.Min(100, math.Max(0, score))

	return EventImpactResult{
		GreenScore:      int(math.Round(score)),
		TransportCO2Kg:  round1(transportCO2),
		EnergyKWh:       round1(energy),
		WasteKg:         round1(waste),
		WaterLiters:     round1(water),
		Recommendations: eventRecommendations(score, transportCO2, energy, waste),
	}
}

func eventRecommendations(score, transportCO2, energy, waste float64) []string {
	recs := []string{}

	if score < 50 {
		recs = append(recs,
			"Consider switching to a more sustainable venue",
			"Encourage carpooling and public transportation",
			"Implement comprehensive recycling and composting programs",
		)
	}
	if transportCO2 > 100 {
		recs = append(recs,
			"Provide shuttle services or public transport incentives",
			"Set up bike parking and encourage cycling",
		)
	}
	if energy > 200 {
		recs = append(recs,
			"Use LED lighting and energy-efficient equipment",
			"Consider outdoor venues or venues with natural lighting",
		)
	}
	if waste > 50 {
		recs = append(recs,
			"Use digital materials instead of printed materials",
			"Partner with local food banks for leftover food",
		)
	}
	if score >= 80 {
		recs = append(recs,
			"Excellent! Your event is very sustainable",
			"Consider applying for green certifications",
		)
	}
	return recs
}
