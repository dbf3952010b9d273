package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/easypost-cli/internal/client/ledger"
	"github.com/dmitrijs2005/easypost-cli/internal/client/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowHistory(t *testing.T) {
	repo := &fakeLedger{list: []ledger.Purchase{
		{Mode: "PROD", ShipmentID: "shp_2", Carrier: "USPS", Rate: "7.10", ArchiveKey: "labels/prod/a.png", PurchasedAt: time.Now()},
		{Mode: "TEST", ShipmentID: "shp_1", Carrier: "UPS", Rate: "9.00", LabelURL: "https://l/1.png", PurchasedAt: time.Now()},
	}}
	var out bytes.Buffer

	require.NoError(t, ShowHistory(context.Background(), repo, view.NewPrinter(&out, false), "", 0))
	for _, s := range []string{"shp_2", "labels/prod/a.png", "https://l/1.png", "tracking_code"} {
		assert.Contains(t, out.String(), s)
	}
}

func TestShowHistory_EmptyAndError(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ShowHistory(context.Background(), &fakeLedger{}, view.NewPrinter(&out, false), "TEST", 5))
	assert.Contains(t, out.String(), "No purchases recorded")

	err := ShowHistory(context.Background(), &fakeLedger{err: errors.New("locked")}, view.NewPrinter(&out, false), "", 0)
	require.ErrorContains(t, err, "locked")
}
