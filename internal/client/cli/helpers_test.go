package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/easypost-cli/internal/client/client"
	"github.com/dmitrijs2005/easypost-cli/internal/client/ledger"
	"github.com/dmitrijs2005/easypost-cli/internal/client/models"
	"github.com/dmitrijs2005/easypost-cli/internal/client/session"
	"github.com/dmitrijs2005/easypost-cli/internal/client/view"
)

// ------------ helpers ------------

// readerFromLines feeds each line followed by Enter. No lines means an
// immediately closed input.
func readerFromLines(lines ...string) *strings.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

var fixedNow = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

type testApp struct {
	*App
	out *bytes.Buffer
	api *fakeClient
	led *fakeLedger
	arc *fakeArchiver
}

func newTestApp(t *testing.T, api *fakeClient, lines ...string) *testApp {
	t.Helper()
	if api == nil {
		api = &fakeClient{}
	}
	out := &bytes.Buffer{}
	c := NewConsole(readerFromLines(lines...), view.NewPrinter(out, false))
	led := &fakeLedger{}
	arc := &fakeArchiver{key: "labels/test/2024/06/30/shp-x.png"}
	a := NewApp(session.Session{Mode: session.ModeTest, APIKey: "EZTK"}, c, Deps{
		Client: api, Ledger: led, Archiver: arc,
	})
	a.now = func() time.Time { return fixedNow }
	return &testApp{App: a, out: out, api: api, led: led, arc: arc}
}

// ------------ fakes ------------

type fakeClient struct {
	shipments    []models.Shipment
	shipmentsErr error
	listParams   []client.ListShipmentsParams

	addresses    []models.Address
	addressesErr error
	addrPageSize []int

	createdAddresses []models.Address
	parcels          []models.Parcel
	shipmentReqs     []models.ShipmentRequest
	createShipment   *models.Shipment
	createErr        error

	buys   [][2]string
	buyErr error
}

var _ client.ShippingClient = (*fakeClient)(nil)

func (f *fakeClient) ListShipments(_ context.Context, p client.ListShipmentsParams) ([]models.Shipment, error) {
	f.listParams = append(f.listParams, p)
	return f.shipments, f.shipmentsErr
}

func (f *fakeClient) ListAddresses(_ context.Context, pageSize int) ([]models.Address, error) {
	f.addrPageSize = append(f.addrPageSize, pageSize)
	return f.addresses, f.addressesErr
}

func (f *fakeClient) CreateAddress(_ context.Context, a models.Address) (*models.Address, error) {
	f.createdAddresses = append(f.createdAddresses, a)
	a.ID = "adr_new_" + a.Country
	return &a, nil
}

func (f *fakeClient) CreateParcel(_ context.Context, p models.Parcel) (*models.Parcel, error) {
	f.parcels = append(f.parcels, p)
	p.ID = "prcl_1"
	return &p, nil
}

func (f *fakeClient) CreateShipment(_ context.Context, req models.ShipmentRequest) (*models.Shipment, error) {
	f.shipmentReqs = append(f.shipmentReqs, req)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createShipment, nil
}

func (f *fakeClient) BuyShipment(_ context.Context, shipmentID, rateID string) (*models.Shipment, error) {
	f.buys = append(f.buys, [2]string{shipmentID, rateID})
	if f.buyErr != nil {
		return nil, f.buyErr
	}
	return &models.Shipment{
		ID:           shipmentID,
		TrackingCode: "9400TEST",
		SelectedRate: &models.Rate{ID: rateID},
		PostageLabel: &models.PostageLabel{LabelURL: "https://labels.example/" + shipmentID + ".png"},
	}, nil
}

type fakeLedger struct {
	recorded []ledger.Purchase
	list     []ledger.Purchase
	err      error
}

func (f *fakeLedger) Record(_ context.Context, p *ledger.Purchase) error {
	if f.err != nil {
		return f.err
	}
	f.recorded = append(f.recorded, *p)
	return nil
}

func (f *fakeLedger) List(_ context.Context, _ string, _ int) ([]ledger.Purchase, error) {
	return f.list, f.err
}

type fakeArchiver struct {
	calls []string
	key   string
	err   error
}

func (f *fakeArchiver) Archive(_ context.Context, mode string, s *models.Shipment) (string, error) {
	f.calls = append(f.calls, mode+":"+s.ID)
	if f.err != nil {
		return "", f.err
	}
	return f.key, nil
}

var errBoom = errors.New("boom")

func intPtr(v int) *int { return &v }
