package usecase

import (
	"fmt"
	"time"

	"garage-booking/internal/data/entity"
	"garage-booking/pkg/utils"
)

// RateTable maps a spot type to its daily rate. It is built from
// config so rates can differ per deployment and per test.
type RateTable map[entity.SpotType]float64

// NewRateTable builds the rate table from garage config.
func NewRateTable(cfg utils.GarageConfig) RateTable {
	return RateTable{
		entity.SpotTypeStandard: cfg.RateStandard,
		entity.SpotTypeEV:       cfg.RateEV,
	}
}

// Price computes days × dailyRate(type), where days is the stay
// duration rounded up to whole days, minimum 1.
func (t RateTable) Price(spotType entity.SpotType, checkIn, checkOut time.Time) (float64, error) {
	rate, ok := t[spotType]
	if !ok {
		return 0, fmt.Errorf("no daily rate for spot type %s", spotType)
	}

	duration := checkOut.Sub(checkIn)
	if duration <= 0 {
		return 0, fmt.Errorf("check-out %s is not after check-in %s", checkOut, checkIn)
	}

	days := int64(duration / (24 * time.Hour))
	if duration%(24*time.Hour) != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}

	return float64(days) * rate, nil
}

// AddonPriceTable maps an addon type to its fixed price.
type AddonPriceTable map[entity.AddonType]float64

func NewAddonPriceTable(cfg utils.GarageConfig) AddonPriceTable {
	return AddonPriceTable{
		entity.AddonTypeCarWash:    cfg.PriceCarWash,
		entity.AddonTypeEVCharging: cfg.PriceEVCharging,
	}
}
