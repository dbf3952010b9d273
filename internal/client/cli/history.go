package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/easypost-cli/internal/client/ledger"
	"github.com/dmitrijs2005/easypost-cli/internal/client/view"
)

// ShowHistory prints the purchase ledger, newest first. An empty mode lists
// every mode.
func ShowHistory(ctx context.Context, repo ledger.Repository, p *view.Printer, mode string, limit int) error {
	list, err := repo.List(ctx, mode, limit)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	if len(list) == 0 {
		p.Println("No purchases recorded")
		return nil
	}

	rows := make([]view.Row, len(list))
	for i, pu := range list {
		rows[i] = view.Row{
			{Key: "purchased", Value: pu.PurchasedAt.Local().Format(time.DateTime)},
			{Key: "mode", Value: pu.Mode},
			{Key: "shipment", Value: pu.ShipmentID},
			{Key: "carrier", Value: pu.Carrier},
			{Key: "service", Value: pu.Service},
			{Key: "rate", Value: pu.Rate},
			{Key: "tracking_code", Value: pu.TrackingCode},
			{Key: "label", Value: labelRef(pu)},
		}
	}
	p.Table(rows)
	return nil
}

func labelRef(p ledger.Purchase) string {
	if p.ArchiveKey != "" {
		return p.ArchiveKey
	}
	return p.LabelURL
}
