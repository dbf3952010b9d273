package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/easypost-cli/internal/client/ledger"
	"github.com/dmitrijs2005/easypost-cli/internal/client/models"
)

// purchase buys rate for the shipment, confirms it and then records it.
// Recording failures only produce warnings: the postage is already paid.
func (a *App) purchase(ctx context.Context, shipmentID string, rate models.Rate) error {
	bought, err := a.client.BuyShipment(ctx, shipmentID, rate.ID)
	if err != nil {
		return fmt.Errorf("buy rate %s: %w", rate.ID, err)
	}

	a.p.Println()
	a.p.Success(fmt.Sprintf("Rate Purchased, $%s deducted from EasyPost balance.", rate.Rate))
	if bought != nil && bought.PostageLabel != nil && bought.PostageLabel.LabelURL != "" {
		a.p.Println(a.p.Bold("Label URL:"), bought.PostageLabel.LabelURL)
	}
	a.logger.Info(ctx, "rate purchased", "shipment", shipmentID, "rate", rate.ID, "amount", rate.Rate)

	if bought == nil {
		bought = &models.Shipment{ID: shipmentID}
	}
	a.record(ctx, bought, rate)
	return nil
}

func (a *App) record(ctx context.Context, s *models.Shipment, rate models.Rate) {
	p := ledger.FromShipment(a.mode(), s)
	if p.ShipmentID == "" {
		p.ShipmentID = s.ID
	}
	// selected_rate on a buy response may be a bare id.
	fill(&p.RateID, rate.ID)
	fill(&p.Carrier, rate.Carrier)
	fill(&p.Service, rate.Service)
	fill(&p.Rate, rate.Rate)

	if a.archiver != nil {
		key, err := a.archiver.Archive(ctx, a.mode(), s)
		if err != nil {
			a.logger.Warn(ctx, "label archive failed", "shipment", s.ID, "err", err)
			a.p.Error("Warning: label not archived: " + err.Error())
		} else {
			p.ArchiveKey = key
			a.p.Println(a.p.Bold("Archived:"), key)
		}
	}

	if a.ledger != nil {
		if err := a.ledger.Record(ctx, &p); err != nil {
			a.logger.Warn(ctx, "purchase history write failed", "shipment", s.ID, "err", err)
			a.p.Error("Warning: purchase not saved to history: " + err.Error())
		}
	}
}

func fill(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}
