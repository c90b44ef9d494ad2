package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fortuneehis/quickk/auth"
	"github.com/fortuneehis/quickk/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateMissingToken(t *testing.T) {
	middleware := newAuthMiddleware(auth.NewTokenAuthenticator("test-secret"), &fakeUserStore{})

	handler := middleware.authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodPost, "/post/like", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "token is required")
}

func TestAuthenticateInvalidToken(t *testing.T) {
	middleware := newAuthMiddleware(auth.NewTokenAuthenticator("test-secret"), &fakeUserStore{})

	handler := middleware.authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodPost, "/post/like", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestAuthenticateUnknownUser(t *testing.T) {
	authenticator := auth.NewTokenAuthenticator("test-secret")
	middleware := newAuthMiddleware(authenticator, &fakeUserStore{})

	token, err := authenticator.Generate(uuid.New())
	require.NoError(t, err)

	handler := middleware.authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodPost, "/post/like", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}

func TestAuthenticateResolvesUser(t *testing.T) {
	authenticator := auth.NewTokenAuthenticator("test-secret")
	user := &models.User{UUID: uuid.New(), Username: "fan"}
	middleware := newAuthMiddleware(authenticator, &fakeUserStore{users: []*models.User{user}})

	token, err := authenticator.Generate(user.UUID)
	require.NoError(t, err)

	var gotUser *models.User
	handler := middleware.authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = ctxGetUser(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/post/like", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotUser)
	assert.Equal(t, user.UUID, gotUser.UUID)
}
