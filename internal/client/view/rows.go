package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/easypost-cli/internal/client/models"
)

// ouncesPerKilogram converts the provider's ounce weights for display.
const ouncesPerKilogram = 35.274

// Field is a single key/value cell of a display row.
type Field struct {
	Key   string
	Value string
}

// Row is an ordered list of fields. All rows passed to one table are expected
// to share the same keys.
type Row []Field

// Keys returns the field names in order.
func (r Row) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Key
	}
	return keys
}

// Values returns the field values in order.
func (r Row) Values() []string {
	values := make([]string, len(r))
	for i, f := range r {
		values[i] = f.Value
	}
	return values
}

// Get returns the value stored under key.
func (r Row) Get(key string) (string, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// AddressRow maps an address. withContact adds phone and email, which the
// address listing shows but the shipment detail view does not.
func AddressRow(a models.Address, withContact bool) Row {
	row := Row{
		{"name", a.Name},
		{"company", a.Company},
		{"street1", a.Street1},
		{"street2", a.Street2},
		{"city", a.City},
		{"state", a.State},
		{"zip", a.Zip},
		{"country", a.Country},
	}
	if withContact {
		row = append(row, Field{"phone", a.Phone}, Field{"email", a.Email})
	}
	return row
}

// ParcelRow maps a parcel, with the weight shown in lbs/oz and kg.
func ParcelRow(p models.Parcel) Row {
	return Row{
		{"length", formatNumber(p.Length)},
		{"width", formatNumber(p.Width)},
		{"height", formatNumber(p.Height)},
		{"weight", FormatWeight(p.Weight)},
	}
}

// FormatWeight renders an ounce weight as "<N>lbs <M>oz | <K.KK>kg".
// The pound part is omitted when the weight is under one pound.
func FormatWeight(oz float64) string {
	var b strings.Builder
	if lbs := math.Floor(oz / 16); lbs >= 1 {
		fmt.Fprintf(&b, "%.0flbs ", lbs)
	}
	fmt.Fprintf(&b, "%.0foz | ", math.Round(math.Mod(oz, 16)))
	kg := math.Round(oz/ouncesPerKilogram*100) / 100
	fmt.Fprintf(&b, "%.2fkg", kg)
	return b.String()
}

// ShipmentRow maps a shipment to its one-line summary.
func ShipmentRow(s models.Shipment) Row {
	var carrier string
	if s.SelectedRate != nil {
		carrier = s.SelectedRate.Carrier
	}

	var from, to string
	if s.FromAddress != nil {
		from = s.FromAddress.DisplayName()
	}
	if s.ToAddress != nil {
		to = s.ToAddress.Name
	}

	customs := "No"
	if s.CustomsInfo != nil {
		customs = "Yes"
	}

	return Row{
		{"carrier", carrier},
		{"tracking_code", s.TrackingCode},
		{"from", from},
		{"to", to},
		{"customs", customs},
		{"status", s.Status},
		{"cost", feeAmount(s, models.FeeTypePostage)},
		{"ins", feeAmount(s, models.FeeTypeInsurance)},
	}
}

// RateRow maps a rate. withID adds the rate id, used by views that let the
// user pick a rate to buy.
func RateRow(r models.Rate, withID bool) Row {
	days := ""
	if r.DeliveryDays != nil {
		days = strconv.Itoa(*r.DeliveryDays)
	}
	row := Row{
		{"carrier", r.Carrier},
		{"service", r.Service},
		{"rate", r.Rate},
		{"days", days},
	}
	if withID {
		row = append(row, Field{"id", r.ID})
	}
	return row
}

// feeAmount returns the fee as a plain number, or "" when the shipment has no
// such fee or the amount is not numeric.
func feeAmount(s models.Shipment, t models.FeeType) string {
	f, ok := s.Fee(t)
	if !ok || f.Amount == "" {
		return ""
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(f.Amount), 64)
	if err != nil {
		return ""
	}
	return formatNumber(v)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
