package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/easypost-cli/internal/client/models"
	"github.com/dmitrijs2005/easypost-cli/internal/client/view"
	"github.com/dmitrijs2005/easypost-cli/internal/common"
)

// NewShipment walks through addresses, customs and parcel dimensions,
// creates the shipment and buys the rate the user picks.
func (a *App) NewShipment(ctx context.Context) error {
	from, err := a.pickAddress(ctx, "FROM")
	if err != nil {
		return err
	}
	to, err := a.pickAddress(ctx, "TO")
	if err != nil {
		return err
	}

	var customsID string
	if !strings.EqualFold(from.Country, to.Country) {
		a.p.Error(`Customs info required for international shipments. Please enter your "customs_info" ID:`)
		if customsID, err = a.askRequired(prompt); err != nil {
			return err
		}
	}

	parcel, err := a.newParcel(ctx)
	if err != nil {
		return err
	}

	shipment, err := a.client.CreateShipment(ctx, models.ShipmentRequest{
		FromAddressID: from.ID,
		ToAddressID:   to.ID,
		ParcelID:      parcel.ID,
		CustomsInfoID: customsID,
	})
	if err != nil {
		return fmt.Errorf("create shipment: %w", err)
	}

	rates := view.SortRates(shipment.Rates)
	if len(rates) == 0 {
		a.p.Error("No rates returned for this shipment")
		for _, m := range shipment.Messages {
			a.p.Printf("%s: %s\n", m.Carrier, m.Message)
		}
		return nil
	}

	a.p.Println()
	a.line("Select a rate to buy:")
	a.p.Table(rateRows(rates))
	a.line("[0-9] Selection | [Q] Quit to main menu")

	for {
		in, err := a.ReadLine(prompt)
		if err != nil {
			return err
		}
		if isQuit(in) {
			return common.ErrAborted
		}
		if i, ok := pickIndex(in, len(rates)); ok {
			return a.purchase(ctx, shipment.ID, rates[i])
		}
		a.p.Error("Invalid selection - postage not purchased")
	}
}

// pickAddress lets the user select a listed address, create a new one or
// abort. Input that is neither Q nor a valid index starts a new address.
func (a *App) pickAddress(ctx context.Context, role string) (*models.Address, error) {
	a.p.Println()
	list, err := a.listAddresses(ctx)
	if err != nil {
		return nil, err
	}

	a.line(fmt.Sprintf("Select or enter a %s address", role),
		"[0-9] Selection | [N] New Address | [Q] Quit to main Menu")
	in, err := a.ReadLine(prompt)
	if err != nil {
		return nil, err
	}
	if isQuit(in) {
		return nil, common.ErrAborted
	}
	if i, ok := pickIndex(in, len(list)); ok {
		return &list[i], nil
	}
	return a.newAddress(ctx)
}

func (a *App) newParcel(ctx context.Context) (*models.Parcel, error) {
	a.p.Println()
	a.line("Package Dimensions")

	var (
		p   models.Parcel
		err error
	)
	for _, s := range []struct {
		prompt string
		dst    *float64
	}{
		{"Length (inch): ", &p.Length},
		{"Height (inch): ", &p.Height},
		{"Width (inch): ", &p.Width},
		{"Weight (oz): ", &p.Weight},
	} {
		if *s.dst, err = a.askPositive(s.prompt); err != nil {
			return nil, err
		}
	}

	created, err := a.client.CreateParcel(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create parcel: %w", err)
	}
	return created, nil
}
