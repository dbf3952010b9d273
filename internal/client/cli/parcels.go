package cli

import "context"

// ListParcels is a placeholder; EasyPost has no parcel listing endpoint.
func (a *App) ListParcels(_ context.Context) error {
	a.line("Parcels are not yet implemented")
	return nil
}
