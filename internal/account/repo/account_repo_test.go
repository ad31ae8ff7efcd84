package repo

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsmatch/careermatch/internal/account/entity"
)

var accountCols = []string{
	"id", "username", "email", "password_hash", "name", "skills", "bio",
	"favorite_subject", "personality_type", "session_token",
	"created_at", "updated_at", "last_login_at",
}

func newMockRepo(t *testing.T) (*AccountRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAccountRepo(sqlx.NewDb(db, "postgres")), mock
}

func testAccount() *entity.Account {
	return &entity.Account{Username: "amy", Email: "amy@example.com", PasswordHash: "hash"}
}

func profileUpdate(name, skills *string) entity.ProfileUpdate {
	return entity.ProfileUpdate{Name: name, Skills: skills}
}

func accountRow() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(accountCols).
		AddRow(int64(1), "amy", "amy@example.com", "hash", nil, "programming, math",
			nil, nil, nil, nil, now, now, nil)
}

func TestCreateMapsUniqueViolation(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`(?s)INSERT INTO accounts.+RETURNING`).
		WithArgs("amy", "amy@example.com", "hash").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := r.Create(context.Background(), testAccount())
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReturnsInsertedRow(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`(?s)INSERT INTO accounts.+RETURNING`).
		WithArgs("amy", "amy@example.com", "hash").
		WillReturnRows(accountRow())

	a, err := r.Create(context.Background(), testAccount())
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, "amy", a.Username)
	assert.Nil(t, a.SessionToken)
}

func TestGetByUsernameNotFound(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`(?s)SELECT.+FROM accounts WHERE username=\$1`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(accountCols))

	_, err := r.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByTokenEmptyShortCircuits(t *testing.T) {
	r, mock := newMockRepo(t)

	// no query expectations: an empty token must not touch the DB
	_, err := r.GetByToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByTokenFound(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`(?s)SELECT.+FROM accounts WHERE session_token=\$1`).
		WithArgs("tok-1").
		WillReturnRows(accountRow())

	a, err := r.GetByToken(context.Background(), "tok-1")
	require.NoError(t, err)
	require.NotNil(t, a.Skills)
	assert.Equal(t, "programming, math", *a.Skills)
}

func TestUpdateProfileWritesOnlySuppliedFields(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`(?s)UPDATE accounts SET name=\$1, skills=\$2, updated_at=NOW\(\) WHERE id=\$3 RETURNING`).
		WithArgs("Amy", "programming, math", int64(1)).
		WillReturnRows(accountRow())

	name := "Amy"
	skills := "programming, math"
	_, err := r.UpdateProfile(context.Background(), 1, profileUpdate(&name, &skills))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfileEmptyUpdateFetches(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`(?s)SELECT.+FROM accounts WHERE id=\$1`).
		WithArgs(int64(1)).
		WillReturnRows(accountRow())

	a, err := r.UpdateProfile(context.Background(), 1, profileUpdate(nil, nil))
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)
}

func TestUpdateTokenSetAndClear(t *testing.T) {
	r, mock := newMockRepo(t)

	tok := "tok-2"
	mock.ExpectExec(`UPDATE accounts SET session_token=\$2, last_login_at=NOW\(\), updated_at=NOW\(\) WHERE id=\$1`).
		WithArgs(int64(1), tok).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, r.UpdateToken(context.Background(), 1, &tok))

	mock.ExpectExec(`UPDATE accounts SET session_token=NULL, updated_at=NOW\(\) WHERE id=\$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, r.UpdateToken(context.Background(), 1, nil))

	assert.NoError(t, mock.ExpectationsWereMet())
}
