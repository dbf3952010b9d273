package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shipmentJSON = `{
  "id": "shp_1",
  "created_at": "2024-03-01T10:00:00Z",
  "status": "unknown",
  "tracking_code": null,
  "from_address": {"id": "adr_1", "name": "", "company": "ACME", "country": "US"},
  "to_address": {"id": "adr_2", "name": "Jane", "country": "CA"},
  "parcel": {"id": "prcl_1", "length": 10, "width": 5, "height": 5, "weight": 32},
  "customs_info": null,
  "rates": [
    {"id": "rate_1", "carrier": "USPS", "service": "Priority", "rate": "7.58", "delivery_days": 2},
    {"id": "rate_2", "carrier": "UPS", "service": "Ground", "rate": "n/a", "delivery_days": null}
  ],
  "selected_rate": null,
  "fees": [
    {"type": "LabelFee", "amount": "0.00000"},
    {"type": "PostageFee", "amount": "7.58000", "charged": true}
  ]
}`

func TestShipment_Unmarshal(t *testing.T) {
	var s Shipment
	require.NoError(t, json.Unmarshal([]byte(shipmentJSON), &s))

	assert.Equal(t, "shp_1", s.ID)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), s.CreatedAt)
	assert.Equal(t, "", s.TrackingCode)
	assert.Nil(t, s.CustomsInfo)
	assert.False(t, s.IsPurchased())
	require.Len(t, s.Rates, 2)
	require.NotNil(t, s.Rates[0].DeliveryDays)
	assert.Equal(t, 2, *s.Rates[0].DeliveryDays)
	assert.Nil(t, s.Rates[1].DeliveryDays)
	assert.Equal(t, "ACME", s.FromAddress.DisplayName())
	assert.Equal(t, "Jane", s.ToAddress.DisplayName())
}

func TestShipment_Fee(t *testing.T) {
	var s Shipment
	require.NoError(t, json.Unmarshal([]byte(shipmentJSON), &s))

	f, ok := s.Fee(FeeTypePostage)
	require.True(t, ok)
	assert.Equal(t, "7.58000", f.Amount)

	_, ok = s.Fee(FeeTypeInsurance)
	assert.False(t, ok)
}

func TestRate_Price(t *testing.T) {
	v, ok := Rate{Rate: " 12.5 "}.Price()
	require.True(t, ok)
	assert.Equal(t, 12.5, v)

	_, ok = Rate{Rate: ""}.Price()
	assert.False(t, ok)
}
