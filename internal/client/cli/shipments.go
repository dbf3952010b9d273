package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/easypost-cli/internal/client/client"
	"github.com/dmitrijs2005/easypost-cli/internal/client/models"
	"github.com/dmitrijs2005/easypost-cli/internal/client/view"
)

// ListShipments shows recent unpurchased shipments and the details of the
// one the user picks.
func (a *App) ListShipments(ctx context.Context) error {
	list, err := a.client.ListShipments(ctx, client.ListShipmentsParams{
		PageSize:      shipmentPageSize,
		Purchased:     false,
		StartDatetime: a.now().Add(-shipmentWindow),
	})
	if err != nil {
		return fmt.Errorf("list shipments: %w", err)
	}
	if len(list) == 0 {
		a.p.Error("No shipments found")
		return nil
	}

	sorted := view.SortShipments(list)
	rows := make([]view.Row, len(sorted))
	for i, s := range sorted {
		rows[i] = view.ShipmentRow(s)
	}
	a.p.Table(rows)
	a.line(fmt.Sprintf("Showing first %d Shipments (from last 30 days)", shipmentPageSize),
		"[0-9] Details | [Enter] Main Menu")

	for {
		in, err := a.ReadLine(prompt)
		if err != nil {
			return err
		}
		if in == "" {
			return nil
		}
		if i, ok := pickIndex(in, len(sorted)); ok {
			return a.showShipment(ctx, sorted[i])
		}
		a.p.Error("Invalid selection")
	}
}

func (a *App) showShipment(ctx context.Context, s models.Shipment) error {
	a.p.Println(a.p.Bold("From / To:"))
	a.p.Compare("From", view.AddressRow(deref(s.FromAddress), false), "To", view.AddressRow(deref(s.ToAddress), false))

	if s.Parcel != nil {
		a.p.Println(a.p.Bold("Parcel:"))
		a.p.Record(view.ParcelRow(*s.Parcel))
	}

	rates := view.SortRates(s.Rates)
	if s.SelectedRate != nil {
		a.p.Println(a.p.Bold("Selected Rate:"))
		a.p.Table([]view.Row{view.RateRow(*s.SelectedRate, true)})
		a.p.Println(a.p.Bold("Carrier:"), s.SelectedRate.Carrier)
	} else {
		a.p.Println(a.p.Bold("Available Rates:"))
		a.p.Table(rateRows(rates))
	}
	if s.Tracker != nil && s.Tracker.PublicURL != "" {
		a.p.Println(a.p.Bold("Tracking:"), s.Tracker.PublicURL)
	}
	if s.PostageLabel != nil && s.PostageLabel.LabelURL != "" {
		a.p.Println(a.p.Bold("Label URL:"), s.PostageLabel.LabelURL)
	}

	if s.IsPurchased() || len(rates) == 0 {
		return nil
	}

	a.line("Shipment has not been purchased. Purchase a rate?", "[0-9] Purchase rate | [Q] Main Menu")
	in, err := a.ReadLine(prompt)
	if err != nil {
		return err
	}
	if isQuit(in) {
		return nil
	}
	i, ok := pickIndex(in, len(rates))
	if !ok {
		a.p.Error("Invalid selection")
		return nil
	}
	return a.purchase(ctx, s.ID, rates[i])
}

func rateRows(rates []models.Rate) []view.Row {
	rows := make([]view.Row, len(rates))
	for i, r := range rates {
		rows[i] = view.RateRow(r, true)
	}
	return rows
}

func deref(a *models.Address) models.Address {
	if a == nil {
		return models.Address{}
	}
	return *a
}
