package services

import (
	"errors"
	"math"

	"github.com/EISEC/spb-remont/dto"
)

// priceBand is the price-per-m² range for one repair class.
type priceBand struct {
	Min     int
	Max     int
	Average int
	Label   string
}

// repairPrices mirrors the published price table (rubles per m²).
var repairPrices = map[string]priceBand{
	"economy":  {Min: 12000, Max: 18000, Average: 15000, Label: "Эконом"},
	"standard": {Min: 20000, Max: 30000, Average: 25000, Label: "Стандарт"},
	"luxury":   {Min: 35000, Max: 55000, Average: 45000, Label: "Люкс"},
}

// designMultiplier is applied when the client orders a design project.
const designMultiplier = 1.2

// serviceStep is the surcharge fraction per selected extra service.
const serviceStep = 0.1

var validRoomTypes = map[string]bool{
	"apartment":  true,
	"office":     true,
	"house":      true,
	"commercial": true,
}

var (
	ErrEstimateRoomType   = errors.New("выберите тип помещения")
	ErrEstimateRepairType = errors.New("выберите тип ремонта")
	ErrEstimateArea       = errors.New("площадь должна быть от 1 до 1000 м²")
)

// EstimateService computes renovation cost bands from the price table.
type EstimateService struct{}

func NewEstimateService() *EstimateService {
	return &EstimateService{}
}

// Estimate validates the request and multiplies the per-m² band by the
// area, the extra-services surcharge and the design modifier, rounding to
// whole rubles.
func (s *EstimateService) Estimate(req dto.EstimateRequest) (dto.EstimateResponse, error) {
	if !validRoomTypes[req.RoomType] {
		return dto.EstimateResponse{}, ErrEstimateRoomType
	}
	band, ok := repairPrices[req.RepairType]
	if !ok {
		return dto.EstimateResponse{}, ErrEstimateRepairType
	}
	if req.Area <= 0 || req.Area > 1000 {
		return dto.EstimateResponse{}, ErrEstimateArea
	}

	mult := 1.0 + serviceStep*float64(len(req.Services))
	if req.HasDesign {
		mult *= designMultiplier
	}

	scale := func(perM2 int) int {
		return int(math.Round(float64(perM2) * req.Area * mult))
	}

	return dto.EstimateResponse{
		Min:     scale(band.Min),
		Max:     scale(band.Max),
		Average: scale(band.Average),
		PerM2:   band.Average,
		Label:   band.Label,
	}, nil
}
