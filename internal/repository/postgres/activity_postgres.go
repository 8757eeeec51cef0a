package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"erpapi/internal/model"
	"erpapi/internal/repository"
)

const activityColumns = `id, activity_number, account_id, reference_id, tsm, manager, company_name,
		type_activity, status, remarks, quotation_amount, sales_order_amount, created_at, updated_at`

const progressColumns = `id, activity_id, reference_id, type_activity, status, quotation_number,
		so_number, amount, remarks, created_at`

// ActivityPostgres is a PostgreSQL implementation of repository.ActivityRepository.
type ActivityPostgres struct {
	db *sql.DB
}

// NewActivityPostgres creates a new ActivityPostgres repository.
func NewActivityPostgres(db *sql.DB) *ActivityPostgres {
	return &ActivityPostgres{db: db}
}

var _ repository.ActivityRepository = (*ActivityPostgres)(nil)

func scanActivity(s rowScanner) (*model.Activity, error) {
	var a model.Activity
	if err := s.Scan(
		&a.ID,
		&a.ActivityNumber,
		&a.AccountID,
		&a.ReferenceID,
		&a.TSM,
		&a.Manager,
		&a.CompanyName,
		&a.TypeActivity,
		&a.Status,
		&a.Remarks,
		&a.QuotationAmount,
		&a.SalesOrderAmount,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func scanProgress(s rowScanner) (*model.Progress, error) {
	var p model.Progress
	if err := s.Scan(
		&p.ID,
		&p.ActivityID,
		&p.ReferenceID,
		&p.TypeActivity,
		&p.Status,
		&p.QuotationNumber,
		&p.SONumber,
		&p.Amount,
		&p.Remarks,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new activity row and returns the stored record.
func (r *ActivityPostgres) Create(ctx context.Context, a *model.Activity) (*model.Activity, error) {
	const q = `
		INSERT INTO activities (` + activityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + activityColumns
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		a.ActivityNumber,
		a.AccountID,
		a.ReferenceID,
		a.TSM,
		a.Manager,
		a.CompanyName,
		a.TypeActivity,
		a.Status,
		a.Remarks,
		a.QuotationAmount,
		a.SalesOrderAmount,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return scanActivity(row)
}

// FindByID fetches a single activity by its ID.
func (r *ActivityPostgres) FindByID(ctx context.Context, id string) (*model.Activity, error) {
	const q = `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`
	return scanActivity(r.db.QueryRowContext(ctx, q, id))
}

func activityWhere(f repository.ActivityFilter) *whereClause {
	w := &whereClause{}
	w.addIf("reference_id = ?", f.ReferenceID)
	w.addIf("tsm = ?", f.TSM)
	w.addIf("manager = ?", f.Manager)
	w.addIf("status = ?", f.Status)
	if !f.From.IsZero() {
		w.add("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		w.add("created_at < ?", f.To)
	}
	return w
}

// List returns activities newest first with a total count.
func (r *ActivityPostgres) List(ctx context.Context, f repository.ActivityFilter, pq repository.PageQuery) (*repository.PageResult[model.Activity], error) {
	w := activityWhere(f)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activities`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + activityColumns + ` FROM activities` + w.String() +
		` ORDER BY created_at DESC, id DESC LIMIT ` + w.next(1) + ` OFFSET ` + w.next(2)
	args := append(append([]any{}, w.args...), pq.Limit, pq.Offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Activity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Activity]{Items: items, Total: total}, nil
}

// Update overwrites the editable columns. Amounts only move through AddProgress.
func (r *ActivityPostgres) Update(ctx context.Context, a *model.Activity) (*model.Activity, error) {
	const q = `
		UPDATE activities
		SET account_id = $2, company_name = $3, type_activity = $4, status = $5, remarks = $6,
		    tsm = $7, manager = $8, updated_at = $9
		WHERE id = $1
		RETURNING ` + activityColumns
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		a.AccountID,
		a.CompanyName,
		a.TypeActivity,
		a.Status,
		a.Remarks,
		a.TSM,
		a.Manager,
		a.UpdatedAt,
	)
	return scanActivity(row)
}

// Delete removes an activity by ID.
func (r *ActivityPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM activities WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Summary groups matching activities by status.
func (r *ActivityPostgres) Summary(ctx context.Context, f repository.ActivityFilter) ([]model.ActivityStatusSummary, error) {
	w := activityWhere(f)
	q := `SELECT status, COUNT(*), COALESCE(SUM(quotation_amount), 0), COALESCE(SUM(sales_order_amount), 0)
		FROM activities` + w.String() + ` GROUP BY status ORDER BY status`

	rows, err := r.db.QueryContext(ctx, q, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.ActivityStatusSummary, 0)
	for rows.Next() {
		var s model.ActivityStatusSummary
		if err := rows.Scan(&s.Status, &s.Count, &s.QuotationAmount, &s.SalesOrderAmount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// AddProgress records p and rolls its effect onto the parent activity.
func (r *ActivityPostgres) AddProgress(ctx context.Context, p *model.Progress, quotationDelta, salesOrderDelta decimal.Decimal) (*model.Activity, error) {
	const qActivity = `
		UPDATE activities
		SET status = $2,
		    quotation_amount = quotation_amount + $3,
		    sales_order_amount = sales_order_amount + $4,
		    updated_at = $5
		WHERE id = $1
		RETURNING ` + activityColumns
	const qProgress = `
		INSERT INTO progress (` + progressColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin progress: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	act, err := scanActivity(tx.QueryRowContext(ctx, qActivity,
		p.ActivityID,
		p.Status,
		quotationDelta,
		salesOrderDelta,
		p.CreatedAt,
	))
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, qProgress,
		p.ID,
		p.ActivityID,
		p.ReferenceID,
		p.TypeActivity,
		p.Status,
		p.QuotationNumber,
		p.SONumber,
		p.Amount,
		p.Remarks,
		p.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert progress: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit progress: %w", err)
	}
	return act, nil
}

// ListProgress returns the progress entries of an activity, newest first.
func (r *ActivityPostgres) ListProgress(ctx context.Context, activityID string) ([]model.Progress, error) {
	const q = `SELECT ` + progressColumns + ` FROM progress WHERE activity_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, activityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Progress, 0)
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
