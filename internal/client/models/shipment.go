// Package models defines the EasyPost records the CLI reads and writes.
//
// The field set is limited to what the client displays or sends back; JSON
// tags follow the EasyPost v2 wire format.
package models

import (
	"strconv"
	"strings"
	"time"
)

// FeeType classifies a shipment fee.
type FeeType string

const (
	FeeTypePostage   FeeType = "PostageFee"
	FeeTypeInsurance FeeType = "InsuranceFee"
	FeeTypeLabel     FeeType = "LabelFee"
)

// Fee is a single charge attached to a shipment. Amount is a decimal string.
type Fee struct {
	Type     FeeType `json:"type"`
	Amount   string  `json:"amount"`
	Charged  bool    `json:"charged"`
	Refunded bool    `json:"refunded"`
}

// Rate is a priced shipping option returned for a shipment.
type Rate struct {
	ID           string `json:"id"`
	ShipmentID   string `json:"shipment_id,omitempty"`
	Carrier      string `json:"carrier"`
	Service      string `json:"service"`
	Rate         string `json:"rate"`
	Currency     string `json:"currency,omitempty"`
	DeliveryDays *int   `json:"delivery_days,omitempty"`
}

// Price parses Rate as a number. ok is false when the string is not numeric.
func (r Rate) Price() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(r.Rate), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

type Tracker struct {
	ID        string `json:"id"`
	PublicURL string `json:"public_url"`
}

type PostageLabel struct {
	ID            string `json:"id"`
	LabelURL      string `json:"label_url"`
	LabelFileType string `json:"label_file_type,omitempty"`
}

type CustomsInfo struct {
	ID string `json:"id"`
}

// Message is a carrier-level note, typically explaining a missing rate.
type Message struct {
	Carrier string `json:"carrier"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Shipment is the central EasyPost object. Optional parts are pointers and
// stay nil until the provider fills them in (e.g. PostageLabel after a buy).
type Shipment struct {
	ID           string        `json:"id"`
	CreatedAt    time.Time     `json:"created_at"`
	Mode         string        `json:"mode,omitempty"`
	Status       string        `json:"status"`
	TrackingCode string        `json:"tracking_code"`
	FromAddress  *Address      `json:"from_address"`
	ToAddress    *Address      `json:"to_address"`
	Parcel       *Parcel       `json:"parcel"`
	CustomsInfo  *CustomsInfo  `json:"customs_info"`
	Rates        []Rate        `json:"rates"`
	SelectedRate *Rate         `json:"selected_rate"`
	Fees         []Fee         `json:"fees"`
	Tracker      *Tracker      `json:"tracker"`
	PostageLabel *PostageLabel `json:"postage_label"`
	Messages     []Message     `json:"messages"`
}

// Fee returns the first fee of type t.
func (s Shipment) Fee(t FeeType) (Fee, bool) {
	for _, f := range s.Fees {
		if f.Type == t {
			return f, true
		}
	}
	return Fee{}, false
}

// IsPurchased reports whether a rate has been bought for the shipment.
func (s Shipment) IsPurchased() bool {
	return s.SelectedRate != nil
}

// ShipmentRequest references previously created objects by id.
// CustomsInfoID is only required for international shipments.
type ShipmentRequest struct {
	FromAddressID string
	ToAddressID   string
	ParcelID      string
	CustomsInfoID string
}
