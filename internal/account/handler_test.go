package account

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillsmatch/careermatch/internal/session"
)

func newTestHandler() (*Handler, *fakeRepo) {
	f := newFakeRepo()
	svc := NewService(f, BcryptHasher{Cost: bcrypt.MinCost})
	return NewHandler(svc, session.NewManager(f), zap.NewNop().Sugar()), f
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func TestSignupSetsSessionCookie(t *testing.T) {
	h, _ := newTestHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/careermatch-api/signup",
		strings.NewReader(`{"username":"amy","email":"amy@example.com","password":"s3cret"}`))
	h.Signup(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	c := sessionCookie(t, rec)
	assert.NotEmpty(t, c.Value)
	assert.True(t, c.HttpOnly)
	// the hash must never appear in the response body
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestSignupDuplicateConflict(t *testing.T) {
	h, _ := newTestHandler()

	body := `{"username":"amy","email":"amy@example.com","password":"s3cret"}`
	rec := httptest.NewRecorder()
	h.Signup(rec, httptest.NewRequest(http.MethodPost, "/careermatch-api/signup", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.Signup(rec, httptest.NewRequest(http.MethodPost, "/careermatch-api/signup", strings.NewReader(body)))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginWrongPasswordIsGeneric(t *testing.T) {
	h, _ := newTestHandler()

	rec := httptest.NewRecorder()
	h.Signup(rec, httptest.NewRequest(http.MethodPost, "/careermatch-api/signup",
		strings.NewReader(`{"username":"amy","email":"amy@example.com","password":"s3cret"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	for _, body := range []string{
		`{"username":"amy","password":"wrong"}`,
		`{"username":"ghost","password":"s3cret"}`,
	} {
		rec := httptest.NewRecorder()
		h.Login(rec, httptest.NewRequest(http.MethodPost, "/careermatch-api/login", strings.NewReader(body)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid credentials")
	}
}

func TestLoginLogoutFlow(t *testing.T) {
	h, _ := newTestHandler()

	rec := httptest.NewRecorder()
	h.Signup(rec, httptest.NewRequest(http.MethodPost, "/careermatch-api/signup",
		strings.NewReader(`{"username":"amy","email":"amy@example.com","password":"s3cret"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/careermatch-api/login",
		strings.NewReader(`{"username":"amy","password":"s3cret"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/careermatch-api/me", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	h.Me(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"amy"`)

	req = httptest.NewRequest(http.MethodPost, "/careermatch-api/logout", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	h.Logout(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// the old token no longer resolves
	req = httptest.NewRequest(http.MethodGet, "/careermatch-api/me", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	h.Me(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutAnonymousIsNoOp(t *testing.T) {
	h, _ := newTestHandler()
	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/careermatch-api/logout", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMeWithoutSession(t *testing.T) {
	h, _ := newTestHandler()
	rec := httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/careermatch-api/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
