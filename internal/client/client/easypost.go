package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/easypost-cli/internal/buildinfo"
	"github.com/dmitrijs2005/easypost-cli/internal/client/models"
	"github.com/dmitrijs2005/easypost-cli/internal/logging"
	"github.com/sethgrid/pester"
)

const DefaultBaseURL = "https://api.easypost.com/v2"

// retryBackoff is the pause between read attempts; tests replace it.
var retryBackoff pester.BackoffStrategy = pester.ExponentialBackoff

// Doer sends an HTTP request. *http.Client and *pester.Client satisfy it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures EasyPostClient. Zero Timeout means no timeout; Attempts
// below one is treated as one.
type Options struct {
	BaseURL  string
	Timeout  time.Duration
	Attempts int
	Logger   logging.Logger
}

// EasyPostClient implements ShippingClient against the EasyPost v2 REST API.
type EasyPostClient struct {
	baseURL string
	apiKey  string
	reads   Doer
	writes  Doer
	logger  logging.Logger
}

var _ ShippingClient = (*EasyPostClient)(nil)

// NewEasyPostClient builds a client authenticated with apiKey.
func NewEasyPostClient(apiKey string, opts Options) *EasyPostClient {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Attempts < 1 {
		opts.Attempts = 1
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	hc := &http.Client{Timeout: opts.Timeout}
	return &EasyPostClient{
		baseURL: opts.BaseURL,
		apiKey:  apiKey,
		reads:   newPesterClient(hc, opts.Attempts, opts.Logger),
		writes:  newPesterClient(hc, 1, opts.Logger),
		logger:  opts.Logger,
	}
}

func newPesterClient(hc *http.Client, attempts int, logger logging.Logger) *pester.Client {
	c := pester.NewExtendedClient(hc)
	c.Concurrency = 1
	c.MaxRetries = attempts
	c.Backoff = retryBackoff
	c.LogHook = func(e pester.ErrEntry) {
		logger.Warn(context.Background(), "request failed",
			"verb", e.Verb, "url", e.URL, "attempt", e.Attempt, "attempts", attempts, "err", e.Err)
	}
	return c
}

type idRef struct {
	ID string `json:"id"`
}

func (c *EasyPostClient) ListShipments(ctx context.Context, params ListShipmentsParams) ([]models.Shipment, error) {
	q := url.Values{}
	if params.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(params.PageSize))
	}
	q.Set("purchased", strconv.FormatBool(params.Purchased))
	if !params.StartDatetime.IsZero() {
		q.Set("start_datetime", params.StartDatetime.UTC().Format(time.RFC3339))
	}

	var resp struct {
		Shipments []models.Shipment `json:"shipments"`
		HasMore   bool              `json:"has_more"`
	}
	if err := c.do(ctx, c.reads, http.MethodGet, "/shipments", q, nil, &resp); err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	return resp.Shipments, nil
}

func (c *EasyPostClient) ListAddresses(ctx context.Context, pageSize int) ([]models.Address, error) {
	q := url.Values{}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}

	var resp struct {
		Addresses []models.Address `json:"addresses"`
	}
	if err := c.do(ctx, c.reads, http.MethodGet, "/addresses", q, nil, &resp); err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return resp.Addresses, nil
}

func (c *EasyPostClient) CreateAddress(ctx context.Context, address models.Address) (*models.Address, error) {
	address.ID = ""
	body := map[string]models.Address{"address": address}

	var out models.Address
	if err := c.do(ctx, c.writes, http.MethodPost, "/addresses", nil, body, &out); err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}
	return &out, nil
}

func (c *EasyPostClient) CreateParcel(ctx context.Context, parcel models.Parcel) (*models.Parcel, error) {
	parcel.ID = ""
	body := map[string]models.Parcel{"parcel": parcel}

	var out models.Parcel
	if err := c.do(ctx, c.writes, http.MethodPost, "/parcels", nil, body, &out); err != nil {
		return nil, fmt.Errorf("create parcel: %w", err)
	}
	return &out, nil
}

func (c *EasyPostClient) CreateShipment(ctx context.Context, req models.ShipmentRequest) (*models.Shipment, error) {
	type shipmentBody struct {
		FromAddress idRef  `json:"from_address"`
		ToAddress   idRef  `json:"to_address"`
		Parcel      idRef  `json:"parcel"`
		CustomsInfo *idRef `json:"customs_info,omitempty"`
	}
	sb := shipmentBody{
		FromAddress: idRef{req.FromAddressID},
		ToAddress:   idRef{req.ToAddressID},
		Parcel:      idRef{req.ParcelID},
	}
	if req.CustomsInfoID != "" {
		sb.CustomsInfo = &idRef{req.CustomsInfoID}
	}

	var out models.Shipment
	if err := c.do(ctx, c.writes, http.MethodPost, "/shipments", nil, map[string]shipmentBody{"shipment": sb}, &out); err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}
	return &out, nil
}

func (c *EasyPostClient) BuyShipment(ctx context.Context, shipmentID, rateID string) (*models.Shipment, error) {
	path := "/shipments/" + url.PathEscape(shipmentID) + "/buy"
	body := map[string]idRef{"rate": {rateID}}

	var out models.Shipment
	if err := c.do(ctx, c.writes, http.MethodPost, path, nil, body, &out); err != nil {
		return nil, fmt.Errorf("buy shipment %s: %w", shipmentID, err)
	}
	return &out, nil
}

func (c *EasyPostClient) do(ctx context.Context, doer Doer, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.apiKey, "")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "easypost-cli/"+buildinfo.Version)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := doer.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "api request", "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return mapError(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// mapError decodes the provider's {"error": {...}} envelope. Bodies that do
// not match fall back to the HTTP status text.
func mapError(status int, body []byte) error {
	var envelope struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		envelope.Error.StatusCode = status
		return envelope.Error
	}
	return &APIError{StatusCode: status, Message: http.StatusText(status)}
}
