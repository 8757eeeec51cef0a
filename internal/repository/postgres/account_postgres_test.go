package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erpapi/internal/model"
	"erpapi/internal/repository"
)

var accountCols = []string{"id", "reference_id", "tsm", "manager", "company_name", "contact_person", "contact_number",
	"email_address", "address", "area", "type_client", "status", "created_at", "updated_at"}

func accountRow(a model.Account) *sqlmock.Rows {
	return sqlmock.NewRows(accountCols).AddRow(a.ID, a.ReferenceID, a.TSM, a.Manager, a.CompanyName, a.ContactPerson,
		a.ContactNumber, a.EmailAddress, a.Address, a.Area, a.TypeClient, a.Status, a.CreatedAt, a.UpdatedAt)
}

func sampleAccount() model.Account {
	now := time.Now().UTC()
	return model.Account{
		ID:          "acc-1",
		ReferenceID: "TSA-001",
		TSM:         "TSM-001",
		Manager:     "MGR-001",
		CompanyName: "Acme Trading",
		TypeClient:  "Top 50",
		Status:      model.AccountStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestAccountPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAccountPostgres(db)
	a := sampleAccount()

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(a.ID, a.ReferenceID, a.TSM, a.Manager, a.CompanyName, a.ContactPerson, a.ContactNumber,
			a.EmailAddress, a.Address, a.Area, a.TypeClient, a.Status, a.CreatedAt, a.UpdatedAt).
		WillReturnRows(accountRow(a))

	got, err := repo.Create(context.Background(), &a)

	assert.NoError(t, err)
	assert.Equal(t, "Acme Trading", got.CompanyName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAccountPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM accounts WHERE id = ?").
			WithArgs("acc-1").
			WillReturnRows(accountRow(sampleAccount()))

		a, err := repo.FindByID(ctx, "acc-1")

		assert.NoError(t, err)
		assert.Equal(t, "acc-1", a.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM accounts WHERE id = ?").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(accountCols))

		a, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, a)
	})
}

func TestAccountPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAccountPostgres(db)

	t.Run("default hides removed", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM accounts WHERE reference_id = \$1 AND status <> \$2`).
			WithArgs("TSA-001", model.AccountStatusRemoved).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(`SELECT (.+) FROM accounts WHERE reference_id = \$1 AND status <> \$2 ORDER BY created_at DESC, id DESC LIMIT \$3 OFFSET \$4`).
			WithArgs("TSA-001", model.AccountStatusRemoved, 10, 0).
			WillReturnRows(accountRow(sampleAccount()))

		res, err := repo.List(context.Background(), repository.AccountFilter{ReferenceID: "TSA-001"}, repository.PageQuery{Limit: 10, Offset: 0})

		require.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Len(t, res.Items, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("explicit status and search", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM accounts WHERE status = \$1 AND company_name ILIKE \$2`).
			WithArgs(model.AccountStatusRemoved, "%acme%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT (.+) FROM accounts WHERE status = \$1 AND company_name ILIKE \$2 ORDER BY (.+) LIMIT \$3 OFFSET \$4`).
			WithArgs(model.AccountStatusRemoved, "%acme%", 5, 10).
			WillReturnRows(sqlmock.NewRows(accountCols))

		res, err := repo.List(context.Background(),
			repository.AccountFilter{Status: model.AccountStatusRemoved, Search: "acme"},
			repository.PageQuery{Limit: 5, Offset: 10})

		require.NoError(t, err)
		assert.Equal(t, 0, res.Total)
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAccountPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAccountPostgres(db)
	a := sampleAccount()
	a.CompanyName = "Acme Holdings"

	t.Run("updated", func(t *testing.T) {
		mock.ExpectQuery("UPDATE accounts SET (.+) WHERE id = \\$1 RETURNING").
			WithArgs(a.ID, a.CompanyName, a.ContactPerson, a.ContactNumber, a.EmailAddress, a.Address, a.Area,
				a.TypeClient, a.Status, a.UpdatedAt).
			WillReturnRows(accountRow(a))

		got, err := repo.Update(context.Background(), &a)

		assert.NoError(t, err)
		assert.Equal(t, "Acme Holdings", got.CompanyName)
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery("UPDATE accounts").WillReturnRows(sqlmock.NewRows(accountCols))

		got, err := repo.Update(context.Background(), &a)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, got)
	})
}

func TestAccountPostgres_SetStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAccountPostgres(db)

	mock.ExpectExec("UPDATE accounts SET status = \\$2").
		WithArgs("acc-1", model.AccountStatusRemoved, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.SetStatus(context.Background(), "acc-1", model.AccountStatusRemoved))

	mock.ExpectExec("UPDATE accounts SET status = \\$2").
		WithArgs("missing", model.AccountStatusRemoved, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.SetStatus(context.Background(), "missing", model.AccountStatusRemoved), repository.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountPostgres_Transfer(t *testing.T) {
	transfer := repository.AccountTransfer{
		AccountIDs:  []string{"acc-1", "acc-2"},
		ReferenceID: "TSA-002",
		TSM:         "TSM-002",
		Manager:     "MGR-001",
	}

	t.Run("commits all", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		for _, id := range transfer.AccountIDs {
			mock.ExpectExec("UPDATE accounts SET reference_id").
				WithArgs(id, "TSA-002", "TSM-002", "MGR-001", sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}
		mock.ExpectCommit()

		n, err := NewAccountPostgres(db).Transfer(context.Background(), transfer)

		assert.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE accounts SET reference_id").
			WithArgs("acc-1", "TSA-002", "TSM-002", "MGR-001", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE accounts SET reference_id").
			WithArgs("acc-2", "TSA-002", "TSM-002", "MGR-001", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		n, err := NewAccountPostgres(db).Transfer(context.Background(), transfer)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Equal(t, 0, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE accounts SET reference_id").WillReturnError(errors.New("deadlock"))
		mock.ExpectRollback()

		_, err = NewAccountPostgres(db).Transfer(context.Background(), transfer)

		assert.ErrorContains(t, err, "deadlock")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
