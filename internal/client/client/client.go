package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/easypost-cli/internal/client/models"
)

// ListShipmentsParams filters the shipment listing. A zero StartDatetime
// leaves the provider's default window in place.
type ListShipmentsParams struct {
	PageSize      int
	Purchased     bool
	StartDatetime time.Time
}

// ShippingClient is the subset of the EasyPost API the CLI depends on.
type ShippingClient interface {
	ListShipments(ctx context.Context, params ListShipmentsParams) ([]models.Shipment, error)
	ListAddresses(ctx context.Context, pageSize int) ([]models.Address, error)
	CreateAddress(ctx context.Context, address models.Address) (*models.Address, error)
	CreateParcel(ctx context.Context, parcel models.Parcel) (*models.Parcel, error)
	CreateShipment(ctx context.Context, req models.ShipmentRequest) (*models.Shipment, error)
	BuyShipment(ctx context.Context, shipmentID, rateID string) (*models.Shipment, error)
}
