package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vedran77/devconnect/internal/service"
)

func TestAuthMissingToken(t *testing.T) {
	called := false
	handler := Auth(service.NewTokenService("test-secret"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profile/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"msg":"No token, authorization denied"}`, rec.Body.String())
	assert.False(t, called, "handler must not run without a token")
}

func TestAuthInvalidToken(t *testing.T) {
	called := false
	handler := Auth(service.NewTokenService("test-secret"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/profile/me", nil)
	req.Header.Set("x-auth-token", "tampered")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"msg":"Token is not valid"}`, rec.Body.String())
	assert.False(t, called)
}

func TestAuthValidTokenAttachesUserID(t *testing.T) {
	tokens := service.NewTokenService("test-secret")
	userID := primitive.NewObjectID()

	token, err := tokens.Issue(userID.Hex())
	require.NoError(t, err)

	var gotID primitive.ObjectID
	handler := Auth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetUserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/profile/me", nil)
	req.Header.Set("x-auth-token", token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotID)
}

func TestAuthTokenWithBadUserID(t *testing.T) {
	tokens := service.NewTokenService("test-secret")
	token, err := tokens.Issue("not-an-object-id")
	require.NoError(t, err)

	handler := Auth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/profile/me", nil)
	req.Header.Set("x-auth-token", token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
