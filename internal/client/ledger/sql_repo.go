package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/easypost-cli/internal/dbx"
	"github.com/google/uuid"
)

// timeLayout is fixed width so stored timestamps order as strings.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLRepository implements Repository on sqlite or postgres.
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
	now     func() time.Time
}

// NewSQLRepository returns a repository bound to db.
func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect, now: time.Now}
}

// Record inserts p.
func (r *SQLRepository) Record(ctx context.Context, p *Purchase) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.PurchasedAt.IsZero() {
		p.PurchasedAt = r.now()
	}
	p.PurchasedAt = p.PurchasedAt.UTC()

	query := `insert into purchases (id, mode, shipment_id, rate_id, carrier, service, rate,
			tracking_code, label_url, archive_key, purchased_at)
		values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(query),
		p.ID, p.Mode, p.ShipmentID, p.RateID, p.Carrier, p.Service, p.Rate,
		p.TrackingCode, p.LabelURL, p.ArchiveKey, p.PurchasedAt.Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to insert purchase: %w", err)
	}
	return nil
}

// List returns purchases newest first.
func (r *SQLRepository) List(ctx context.Context, mode string, limit int) ([]Purchase, error) {
	query := `select id, mode, shipment_id, rate_id, carrier, service, rate,
			tracking_code, label_url, archive_key, purchased_at
		from purchases`
	var args []any
	if mode != "" {
		query += ` where mode = ?`
		args = append(args, mode)
	}
	query += ` order by purchased_at desc, id`
	if limit > 0 {
		query += ` limit ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select purchases: %w", err)
	}
	defer rows.Close()

	var result []Purchase
	for rows.Next() {
		var (
			p  Purchase
			at string
		)
		if err := rows.Scan(&p.ID, &p.Mode, &p.ShipmentID, &p.RateID, &p.Carrier, &p.Service, &p.Rate,
			&p.TrackingCode, &p.LabelURL, &p.ArchiveKey, &at); err != nil {
			return nil, err
		}
		if p.PurchasedAt, err = time.Parse(timeLayout, at); err != nil {
			return nil, fmt.Errorf("purchase %s: bad timestamp %q: %w", p.ID, at, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
