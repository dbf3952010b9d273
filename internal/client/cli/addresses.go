package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/easypost-cli/internal/client/models"
	"github.com/dmitrijs2005/easypost-cli/internal/client/view"
)

// ListAddresses shows the most recent saved addresses.
func (a *App) ListAddresses(ctx context.Context) error {
	_, err := a.listAddresses(ctx)
	return err
}

// listAddresses renders up to addressPageSize addresses and returns them so
// NewShipment can select by index. An empty list is reported, not an error.
func (a *App) listAddresses(ctx context.Context) ([]models.Address, error) {
	list, err := a.client.ListAddresses(ctx, addressPageSize)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	if len(list) == 0 {
		a.p.Error("No addresses found")
		return nil, nil
	}

	rows := make([]view.Row, len(list))
	for i, addr := range list {
		rows[i] = view.AddressRow(addr, true)
	}
	a.p.Table(rows)
	return list, nil
}

// newAddress asks for the fields of an address and saves it with the API.
func (a *App) newAddress(ctx context.Context) (*models.Address, error) {
	var (
		addr models.Address
		err  error
	)

	steps := []struct {
		prompt   string
		dst      *string
		required bool
	}{
		{"Name: ", &addr.Name, false},
		{"Company (optional): ", &addr.Company, false},
		{"Street 1: ", &addr.Street1, true},
		{"Street 2: ", &addr.Street2, false},
		{"City: ", &addr.City, true},
		{"State: ", &addr.State, false},
		{"Zip: ", &addr.Zip, false},
		{"Country [US]: ", &addr.Country, false},
	}
	for _, s := range steps {
		if s.required {
			*s.dst, err = a.askRequired(s.prompt)
		} else {
			*s.dst, err = a.ReadLine(s.prompt)
		}
		if err != nil {
			return nil, err
		}
	}
	if addr.Country == "" {
		addr.Country = "US"
	}

	created, err := a.client.CreateAddress(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}
	return created, nil
}
