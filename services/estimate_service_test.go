package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EISEC/spb-remont/dto"
	"github.com/EISEC/spb-remont/services"
)

func TestEstimateBands(t *testing.T) {
	svc := services.NewEstimateService()

	resp, err := svc.Estimate(dto.EstimateRequest{
		RoomType:   "apartment",
		Area:       50,
		RepairType: "standard",
		Rooms:      2,
	})
	require.NoError(t, err)
	assert.Equal(t, 1000000, resp.Min)     // 20000 * 50
	assert.Equal(t, 1500000, resp.Max)     // 30000 * 50
	assert.Equal(t, 1250000, resp.Average) // 25000 * 50
	assert.Equal(t, 25000, resp.PerM2)
	assert.Equal(t, "Стандарт", resp.Label)
}

func TestEstimateDesignMultiplier(t *testing.T) {
	svc := services.NewEstimateService()

	resp, err := svc.Estimate(dto.EstimateRequest{
		RoomType:   "house",
		Area:       100,
		RepairType: "economy",
		Rooms:      4,
		HasDesign:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1440000, resp.Min)     // 12000 * 100 * 1.2
	assert.Equal(t, 1800000, resp.Average) // 15000 * 100 * 1.2
}

func TestEstimateServicesSurcharge(t *testing.T) {
	svc := services.NewEstimateService()

	// two extra services add 10% each, stacking with the design multiplier
	resp, err := svc.Estimate(dto.EstimateRequest{
		RoomType:   "apartment",
		Area:       50,
		RepairType: "standard",
		Rooms:      2,
		Services:   []string{"plumbing", "electrical"},
		HasDesign:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1440000, resp.Min)     // 20000 * 50 * 1.2 * 1.2
	assert.Equal(t, 2160000, resp.Max)     // 30000 * 50 * 1.2 * 1.2
	assert.Equal(t, 1800000, resp.Average) // 25000 * 50 * 1.2 * 1.2
}

func TestEstimateLuxury(t *testing.T) {
	svc := services.NewEstimateService()

	resp, err := svc.Estimate(dto.EstimateRequest{
		RoomType:   "commercial",
		Area:       10,
		RepairType: "luxury",
		Rooms:      1,
	})
	require.NoError(t, err)
	assert.Equal(t, 350000, resp.Min)
	assert.Equal(t, 550000, resp.Max)
	assert.Equal(t, 450000, resp.Average)
}

func TestEstimateValidation(t *testing.T) {
	svc := services.NewEstimateService()

	_, err := svc.Estimate(dto.EstimateRequest{RoomType: "castle", Area: 50, RepairType: "economy"})
	assert.ErrorIs(t, err, services.ErrEstimateRoomType)

	_, err = svc.Estimate(dto.EstimateRequest{RoomType: "apartment", Area: 50, RepairType: "platinum"})
	assert.ErrorIs(t, err, services.ErrEstimateRepairType)

	_, err = svc.Estimate(dto.EstimateRequest{RoomType: "apartment", Area: 1500, RepairType: "economy"})
	assert.ErrorIs(t, err, services.ErrEstimateArea)
}
