// Package ledger keeps a local history of purchased postage so labels can
// be found again after the menu session ends.
package ledger

import (
	"context"
	"time"

	"github.com/dmitrijs2005/easypost-cli/internal/client/models"
)

// Purchase is one bought rate.
type Purchase struct {
	ID           string
	Mode         string
	ShipmentID   string
	RateID       string
	Carrier      string
	Service      string
	Rate         string
	TrackingCode string
	LabelURL     string
	ArchiveKey   string
	PurchasedAt  time.Time
}

// FromShipment builds a Purchase from a bought shipment. ID and PurchasedAt
// are filled in by the repository when empty.
func FromShipment(mode string, s *models.Shipment) Purchase {
	p := Purchase{
		Mode:         mode,
		ShipmentID:   s.ID,
		TrackingCode: s.TrackingCode,
	}
	if r := s.SelectedRate; r != nil {
		p.RateID = r.ID
		p.Carrier = r.Carrier
		p.Service = r.Service
		p.Rate = r.Rate
	}
	if l := s.PostageLabel; l != nil {
		p.LabelURL = l.LabelURL
	}
	return p
}

// Repository stores purchases.
type Repository interface {
	// Record inserts p, assigning an id and timestamp when missing.
	Record(ctx context.Context, p *Purchase) error

	// List returns the newest purchases first. An empty mode lists all modes;
	// limit <= 0 means no limit.
	List(ctx context.Context, mode string, limit int) ([]Purchase, error)
}
