package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nstepanov/lockbox/internal/utils"
	"github.com/nstepanov/lockbox/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHTTPServerAdapter(HTTPClientConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})
}

func issueTestToken(t *testing.T, userID int64) string {
	t.Helper()

	token, err := utils.GenerateJWTToken("test-issuer", userID, time.Hour, "test-key")
	require.NoError(t, err)
	return token.SignedString
}

func TestHTTPServerAdapter_Register_AdoptsToken(t *testing.T) {
	signed := issueTestToken(t, 42)

	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "john@example.com", req.Email)

		w.Header().Set("Authorization", "Bearer "+signed)
		w.WriteHeader(http.StatusCreated)
	}))

	token, err := a.Register(context.Background(), models.RegisterRequest{Email: "john@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), token.UserID)
	assert.Equal(t, signed, a.Token(), "token must be retained for authed calls")
}

func TestHTTPServerAdapter_Login(t *testing.T) {
	signed := issueTestToken(t, 7)

	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "Bearer "+signed)
		json.NewEncoder(w).Encode(models.LoginResponse{
			WrappedUserKey: "wrapped",
			Keys:           models.AccountKeys{PublicKey: "pub", WrappedPrivateKey: "priv"},
		})
	}))

	lr, token, err := a.Login(context.Background(), models.LoginRequest{
		Email:              "john@example.com",
		MasterPasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), token.UserID)
	assert.Equal(t, "wrapped", lr.WrappedUserKey)
}

func TestHTTPServerAdapter_Login_WrongPassword(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "wrong password", http.StatusUnauthorized)
	}))

	_, _, err := a.Login(context.Background(), models.LoginRequest{Email: "j@e.com", MasterPasswordHash: "x"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPServerAdapter_Prelogin(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/prelogin", r.URL.Path)
		json.NewEncoder(w).Encode(models.PreloginResponse{Kdf: models.DefaultKdfConfig()})
	}))

	kdf, err := a.Prelogin(context.Background(), "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultKdfConfig(), kdf)
}

func TestHTTPServerAdapter_AuthRequestFlow(t *testing.T) {
	id := uuid.New()

	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/auth-requests":
			json.NewEncoder(w).Encode(models.AuthRequestView{ID: id, State: "pending"})
		case r.Method == http.MethodPost && r.URL.Path == "/api/auth-requests/"+id.String()+"/poll":
			var poll models.PollAuthRequestRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&poll))
			assert.Equal(t, "code", poll.AccessCode)
			json.NewEncoder(w).Encode(models.AuthRequestView{ID: id, State: "approved", WrappedUserKey: "payload"})
		default:
			http.NotFound(w, r)
		}
	}))

	created, err := a.CreateAuthRequest(context.Background(), models.CreateAuthRequestRequest{Email: "j@e.com"})
	require.NoError(t, err)
	assert.Equal(t, id, created.ID)

	polled, err := a.PollAuthRequest(context.Background(), id, "code")
	require.NoError(t, err)
	assert.Equal(t, "approved", polled.State)
	assert.Equal(t, "payload", polled.WrappedUserKey)
}

func TestHTTPServerAdapter_AuthedCallsCarryBearer(t *testing.T) {
	var gotAuth string

	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.AuthRequestView{})
	}))

	a.SetToken("session-token")
	_, err := a.ListPendingAuthRequests(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer session-token", gotAuth)
}

func TestMapHTTPError_Statuses(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusGone, ErrGone},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tc := range cases {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		}))

		_, err := a.ListDevices(context.Background())
		if !errors.Is(err, tc.want) {
			t.Errorf("status %d: expected %v, got %v", tc.status, tc.want, err)
		}
	}
}
