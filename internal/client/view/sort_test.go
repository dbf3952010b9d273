package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/easypost-cli/internal/client/models"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestSortRates_Basic(t *testing.T) {
	rates := []models.Rate{
		{ID: "a", Rate: "10.00"},
		{ID: "b", Rate: "2.5"},
		{ID: "c", Rate: "bogus"},
		{ID: "d", Rate: "2.50"},
	}
	got := SortRates(rates)

	ids := make([]string, len(got))
	for i, r := range got {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids)
	assert.Equal(t, "a", rates[0].ID, "input must not be reordered")
}

func TestSortShipments_Basic(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	shipments := []models.Shipment{
		{ID: "old", CreatedAt: base},
		{ID: "new", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "mid1", CreatedAt: base.Add(time.Hour)},
		{ID: "mid2", CreatedAt: base.Add(time.Hour)},
	}
	got := SortShipments(shipments)

	ids := make([]string, len(got))
	for i, s := range got {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"new", "mid1", "mid2", "old"}, ids)
}

func TestSortRates_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("rates are non-decreasing by price and stable", prop.ForAll(
		func(cents []int) bool {
			rates := make([]models.Rate, len(cents))
			for i, c := range cents {
				rates[i] = models.Rate{ID: strconv.Itoa(i), Rate: fmt.Sprintf("%d.%02d", c/100, c%100)}
			}
			sorted := SortRates(rates)
			if len(sorted) != len(rates) {
				return false
			}
			for i := 1; i < len(sorted); i++ {
				prev, _ := sorted[i-1].Price()
				cur, _ := sorted[i].Price()
				if prev > cur {
					return false
				}
				if prev == cur {
					pi, _ := strconv.Atoi(sorted[i-1].ID)
					ci, _ := strconv.Atoi(sorted[i].ID)
					if pi > ci {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 1500)),
	))

	properties.TestingRun(t)
}

func TestSortShipments_Properties(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	properties := gopter.NewProperties(nil)

	properties.Property("shipments are non-increasing by creation time and stable", prop.ForAll(
		func(hours []int) bool {
			shipments := make([]models.Shipment, len(hours))
			for i, h := range hours {
				shipments[i] = models.Shipment{ID: strconv.Itoa(i), CreatedAt: base.Add(time.Duration(h) * time.Hour)}
			}
			sorted := SortShipments(shipments)
			for i := 1; i < len(sorted); i++ {
				prev, cur := sorted[i-1].CreatedAt, sorted[i].CreatedAt
				if prev.Before(cur) {
					return false
				}
				if prev.Equal(cur) {
					pi, _ := strconv.Atoi(sorted[i-1].ID)
					ci, _ := strconv.Atoi(sorted[i].ID)
					if pi > ci {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 6)),
	))

	properties.TestingRun(t)
}

func TestFormatWeight_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("kg part is oz/35.274 to two decimals", prop.ForAll(
		func(oz float64) bool {
			s := FormatWeight(oz)
			i := strings.LastIndex(s, "| ")
			if i < 0 || !strings.HasSuffix(s, "kg") {
				return false
			}
			kg, err := strconv.ParseFloat(strings.TrimSuffix(s[i+2:], "kg"), 64)
			if err != nil {
				return false
			}
			return math.Abs(kg-oz/35.274) <= 0.005+1e-9
		},
		gen.Float64Range(0, 10000),
	))

	properties.Property("lbs part present iff weight is at least one pound", prop.ForAll(
		func(oz float64) bool {
			s := FormatWeight(oz)
			return strings.Contains(s, "lbs ") == (math.Floor(oz/16) >= 1)
		},
		gen.Float64Range(0, 10000),
	))

	properties.TestingRun(t)
}
