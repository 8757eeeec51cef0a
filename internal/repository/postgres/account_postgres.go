package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"erpapi/internal/model"
	"erpapi/internal/repository"
)

const accountColumns = `id, reference_id, tsm, manager, company_name, contact_person, contact_number,
		email_address, address, area, type_client, status, created_at, updated_at`

// AccountPostgres is a PostgreSQL implementation of repository.AccountRepository.
type AccountPostgres struct {
	db *sql.DB
}

// NewAccountPostgres creates a new AccountPostgres repository.
func NewAccountPostgres(db *sql.DB) *AccountPostgres {
	return &AccountPostgres{db: db}
}

var _ repository.AccountRepository = (*AccountPostgres)(nil)

func scanAccount(s rowScanner) (*model.Account, error) {
	var a model.Account
	if err := s.Scan(
		&a.ID,
		&a.ReferenceID,
		&a.TSM,
		&a.Manager,
		&a.CompanyName,
		&a.ContactPerson,
		&a.ContactNumber,
		&a.EmailAddress,
		&a.Address,
		&a.Area,
		&a.TypeClient,
		&a.Status,
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

// Create inserts a new account row and returns the stored record.
func (r *AccountPostgres) Create(ctx context.Context, a *model.Account) (*model.Account, error) {
	const q = `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + accountColumns
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		a.ReferenceID,
		a.TSM,
		a.Manager,
		a.CompanyName,
		a.ContactPerson,
		a.ContactNumber,
		a.EmailAddress,
		a.Address,
		a.Area,
		a.TypeClient,
		a.Status,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return scanAccount(row)
}

// FindByID fetches a single account by its ID, including removed ones.
func (r *AccountPostgres) FindByID(ctx context.Context, id string) (*model.Account, error) {
	const q = `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(r.db.QueryRowContext(ctx, q, id))
}

func accountWhere(f repository.AccountFilter) *whereClause {
	w := &whereClause{}
	w.addIf("reference_id = ?", f.ReferenceID)
	w.addIf("tsm = ?", f.TSM)
	w.addIf("manager = ?", f.Manager)
	if f.Status != "" {
		w.add("status = ?", f.Status)
	} else {
		w.add("status <> ?", model.AccountStatusRemoved)
	}
	if f.Search != "" {
		w.add("company_name ILIKE ?", "%"+f.Search+"%")
	}
	return w
}

// List returns accounts using LIMIT/OFFSET pagination and a total count.
func (r *AccountPostgres) List(ctx context.Context, f repository.AccountFilter, pq repository.PageQuery) (*repository.PageResult[model.Account], error) {
	w := accountWhere(f)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + accountColumns + ` FROM accounts` + w.String() +
		` ORDER BY created_at DESC, id DESC LIMIT ` + w.next(1) + ` OFFSET ` + w.next(2)
	args := append(append([]any{}, w.args...), pq.Limit, pq.Offset)

	items, err := r.query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Account]{Items: items, Total: total}, nil
}

// ListAll returns every matching account ordered by company name.
func (r *AccountPostgres) ListAll(ctx context.Context, f repository.AccountFilter) ([]model.Account, error) {
	w := accountWhere(f)
	q := `SELECT ` + accountColumns + ` FROM accounts` + w.String() + ` ORDER BY company_name, id`
	return r.query(ctx, q, w.args...)
}

func (r *AccountPostgres) query(ctx context.Context, q string, args ...any) ([]model.Account, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update overwrites the editable columns of an account.
func (r *AccountPostgres) Update(ctx context.Context, a *model.Account) (*model.Account, error) {
	const q = `
		UPDATE accounts
		SET company_name = $2, contact_person = $3, contact_number = $4, email_address = $5,
		    address = $6, area = $7, type_client = $8, status = $9, updated_at = $10
		WHERE id = $1
		RETURNING ` + accountColumns
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		a.CompanyName,
		a.ContactPerson,
		a.ContactNumber,
		a.EmailAddress,
		a.Address,
		a.Area,
		a.TypeClient,
		a.Status,
		a.UpdatedAt,
	)
	return scanAccount(row)
}

// SetStatus changes the status of an account.
func (r *AccountPostgres) SetStatus(ctx context.Context, id, status string) error {
	const q = `UPDATE accounts SET status = $2, updated_at = $3 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, status, time.Now().UTC())
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

// Transfer reassigns the given accounts inside a single transaction.
func (r *AccountPostgres) Transfer(ctx context.Context, t repository.AccountTransfer) (int, error) {
	const q = `
		UPDATE accounts
		SET reference_id = $2, tsm = $3, manager = $4, updated_at = $5
		WHERE id = $1 AND status <> 'Removed'`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transfer: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	moved := 0
	for _, id := range t.AccountIDs {
		res, err := tx.ExecContext(ctx, q, id, t.ReferenceID, t.TSM, t.Manager, now)
		if err != nil {
			return 0, fmt.Errorf("transfer account %s: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, fmt.Errorf("transfer account %s: %w", id, repository.ErrNotFound)
		}
		moved += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transfer: %w", err)
	}
	return moved, nil
}
