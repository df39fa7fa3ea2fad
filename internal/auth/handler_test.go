package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell/inkwell-api/internal/models"
	"github.com/inkwell/inkwell-api/internal/store"
)

var testSecret = []byte("test-secret")

// fakeUserStore is an in-memory UserStore keyed by email.
type fakeUserStore struct {
	byEmail map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]*models.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, username, email, hashedPw string) (*models.User, error) {
	if _, exists := f.byEmail[email]; exists {
		return nil, store.ErrDuplicateEmail
	}
	u := &models.User{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Email:     email,
		Password:  hashedPw,
		CreatedAt: time.Now().UTC(),
	}
	f.byEmail[email] = u
	return u, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return u, nil
}

func newTestHandler() (*Handler, *fakeUserStore) {
	users := newFakeUserStore()
	return NewHandler(users, testSecret, time.Hour), users
}

func post(t *testing.T, h http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(b))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestSignup(t *testing.T) {
	h, users := newTestHandler()

	rec := post(t, h.Signup, models.SignupRequest{
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "mypassword123",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	u, ok := users.byEmail["john@example.com"]
	require.True(t, ok)
	require.Equal(t, "johndoe", u.Username)
	require.NotEqual(t, "mypassword123", u.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("mypassword123")))
}

func TestSignup_MissingFields(t *testing.T) {
	cases := []struct {
		name string
		req  models.SignupRequest
	}{
		{"no username", models.SignupRequest{Email: "a@b.com", Password: "pw"}},
		{"no email", models.SignupRequest{Username: "a", Password: "pw"}},
		{"no password", models.SignupRequest{Username: "a", Email: "a@b.com"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, users := newTestHandler()
			rec := post(t, h.Signup, tc.req)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Empty(t, users.byEmail)
		})
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	h, users := newTestHandler()

	req := models.SignupRequest{Username: "johndoe", Email: "john@example.com", Password: "pw1"}
	require.Equal(t, http.StatusCreated, post(t, h.Signup, req).Code)

	req.Username = "impostor"
	rec := post(t, h.Signup, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	require.Len(t, users.byEmail, 1)
	require.Equal(t, "johndoe", users.byEmail["john@example.com"].Username)
}

func TestLogin_ReturnsVerifiableToken(t *testing.T) {
	h, users := newTestHandler()

	require.Equal(t, http.StatusCreated, post(t, h.Signup, models.SignupRequest{
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "mypassword123",
	}).Code)

	rec := post(t, h.Login, models.LoginRequest{
		Email:    "john@example.com",
		Password: "mypassword123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	subject, err := ParseToken(resp.Token, testSecret)
	require.NoError(t, err)
	require.Equal(t, users.byEmail["john@example.com"].ID.Hex(), subject)
}

func TestLogin_NoUserExistenceLeak(t *testing.T) {
	h, _ := newTestHandler()

	require.Equal(t, http.StatusCreated, post(t, h.Signup, models.SignupRequest{
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "mypassword123",
	}).Code)

	wrongPw := post(t, h.Login, models.LoginRequest{Email: "john@example.com", Password: "wrong"})
	unknown := post(t, h.Login, models.LoginRequest{Email: "nobody@example.com", Password: "wrong"})

	require.Equal(t, http.StatusBadRequest, wrongPw.Code)
	require.Equal(t, wrongPw.Code, unknown.Code)
	require.Equal(t, wrongPw.Body.String(), unknown.Body.String())
}

func TestLogin_InvalidBody(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
