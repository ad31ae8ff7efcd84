package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skillsmatch/careermatch/internal/account"
	acctentity "github.com/skillsmatch/careermatch/internal/account/entity"
	acctrepo "github.com/skillsmatch/careermatch/internal/account/repo"
	"github.com/skillsmatch/careermatch/internal/session"
)

// fakeAcctRepo serves one pre-seeded account and records updates.
type fakeAcctRepo struct {
	account *acctentity.Account
	token   string
	updates []acctentity.ProfileUpdate
}

func (f *fakeAcctRepo) Create(ctx context.Context, a *acctentity.Account) (*acctentity.Account, error) {
	return nil, acctrepo.ErrDuplicate
}

func (f *fakeAcctRepo) GetByUsername(ctx context.Context, username string) (*acctentity.Account, error) {
	return nil, acctrepo.ErrNotFound
}

func (f *fakeAcctRepo) GetByToken(ctx context.Context, token string) (*acctentity.Account, error) {
	if f.account != nil && token == f.token {
		return f.account, nil
	}
	return nil, acctrepo.ErrNotFound
}

func (f *fakeAcctRepo) UpdateProfile(ctx context.Context, id int64, u acctentity.ProfileUpdate) (*acctentity.Account, error) {
	f.updates = append(f.updates, u)
	return f.account, nil
}

func (f *fakeAcctRepo) UpdateToken(ctx context.Context, id int64, token *string) error {
	return nil
}

func newProfileHandler(acct *fakeAcctRepo, guests *fakeProfileRepo) *Handler {
	return NewHandler(
		NewService(guests),
		account.NewService(acct, nil),
		session.NewManager(acct),
		zap.NewNop().Sugar(),
	)
}

func TestSaveGuestProfile(t *testing.T) {
	guests := &fakeProfileRepo{}
	h := newProfileHandler(&fakeAcctRepo{}, guests)

	rec := httptest.NewRecorder()
	h.Save(rec, httptest.NewRequest(http.MethodPost, "/careermatch-api/profile",
		strings.NewReader(`{"name":"Guest","skills":"design, art"}`)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, guests.created, 1)
	assert.Equal(t, "design, art", guests.created[0].Skills)
	assert.Equal(t, "Exploring careers!", guests.created[0].Bio)
}

func TestSaveAccountProfile(t *testing.T) {
	acct := &fakeAcctRepo{
		account: &acctentity.Account{ID: 3, Username: "amy"},
		token:   "tok",
	}
	guests := &fakeProfileRepo{}
	h := newProfileHandler(acct, guests)

	req := httptest.NewRequest(http.MethodPost, "/careermatch-api/profile",
		strings.NewReader(`{"name":"Amy","skills":"programming","favorite_subject":"CS"}`))
	req.AddCookie(&http.Cookie{Name: account.SessionCookie, Value: "tok"})
	rec := httptest.NewRecorder()
	h.Save(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, guests.created, "logged-in submissions must not create guest records")
	require.Len(t, acct.updates, 1)
	u := acct.updates[0]
	require.NotNil(t, u.Skills)
	assert.Equal(t, "programming", *u.Skills)
	require.NotNil(t, u.FavoriteSubject)
	assert.Equal(t, "CS", *u.FavoriteSubject)
	// bio was not supplied, so it must stay untouched
	assert.Nil(t, u.Bio)
}

func TestSaveRequiresNameField(t *testing.T) {
	h := newProfileHandler(&fakeAcctRepo{}, &fakeProfileRepo{})
	rec := httptest.NewRecorder()
	h.Save(rec, httptest.NewRequest(http.MethodPost, "/careermatch-api/profile",
		strings.NewReader(`{"skills":"x"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
