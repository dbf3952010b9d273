package view

import (
	"math"
	"slices"

	"github.com/dmitrijs2005/easypost-cli/internal/client/models"
)

// SortRates returns a copy of rates ordered by ascending price. Equal prices
// keep their relative order; rates whose price does not parse go last.
func SortRates(rates []models.Rate) []models.Rate {
	out := slices.Clone(rates)
	slices.SortStableFunc(out, func(a, b models.Rate) int {
		pa, pb := ratePrice(a), ratePrice(b)
		switch {
		case pa < pb:
			return -1
		case pa > pb:
			return 1
		default:
			return 0
		}
	})
	return out
}

// SortShipments returns a copy of shipments, newest first. Equal timestamps
// keep their relative order.
func SortShipments(shipments []models.Shipment) []models.Shipment {
	out := slices.Clone(shipments)
	slices.SortStableFunc(out, func(a, b models.Shipment) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}

func ratePrice(r models.Rate) float64 {
	if v, ok := r.Price(); ok && !math.IsNaN(v) {
		return v
	}
	return math.Inf(1)
}
