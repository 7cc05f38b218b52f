package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/andrewpaige1/vocabook-api/auth"
	"github.com/andrewpaige1/vocabook-api/config"
	"github.com/andrewpaige1/vocabook-api/models"
	"github.com/andrewpaige1/vocabook-api/repository"
	"github.com/andrewpaige1/vocabook-api/utils"
)

var testJWT = config.JWT{SecretKey: "secret", Issuer: "vocabook-api", Audience: "vocabook", TTL: time.Hour}

type usersByID map[uint]*models.User

func (u usersByID) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if id == 99 {
		return nil, errors.New("db down")
	}
	user, ok := u[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestEnsureValidToken(t *testing.T) {
	t.Parallel()

	mw, err := EnsureValidToken(testJWT, zap.NewNop())
	require.NoError(t, err)

	user := &models.User{ID: 5, Name: "Ana", Role: models.RoleUser}
	token, err := auth.CreateToken(testJWT, user, time.Now())
	require.NoError(t, err)

	expired, err := auth.CreateToken(testJWT, user, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	otherSecret := testJWT
	otherSecret.SecretKey = "other"
	forged, err := auth.CreateToken(otherSecret, user, time.Now())
	require.NoError(t, err)

	otherAudience := testJWT
	otherAudience.Audience = "someone-else"
	misdirected, err := auth.CreateToken(otherAudience, user, time.Now())
	require.NoError(t, err)

	otherIssuer := testJWT
	otherIssuer.Issuer = "someone-else"
	foreign, err := auth.CreateToken(otherIssuer, user, time.Now())
	require.NoError(t, err)

	bearer := func(tok string) func(r *http.Request) {
		return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+tok) }
	}

	var gotID uint
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = utils.GetUserID(r)
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name    string
		prepare func(r *http.Request)
		want    int
	}{
		{
			name:    "bearer header",
			prepare: func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) },
			want:    http.StatusNoContent,
		},
		{
			name:    "cookie",
			prepare: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token}) },
			want:    http.StatusNoContent,
		},
		{
			name:    "missing",
			prepare: func(r *http.Request) {},
			want:    http.StatusUnauthorized,
		},
		{name: "expired", prepare: bearer(expired), want: http.StatusUnauthorized},
		{name: "wrong secret", prepare: bearer(forged), want: http.StatusUnauthorized},
		{name: "wrong audience", prepare: bearer(misdirected), want: http.StatusUnauthorized},
		{name: "wrong issuer", prepare: bearer(foreign), want: http.StatusUnauthorized},
		{
			name:    "tampered",
			prepare: func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token+"x") },
			want:    http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.prepare(r)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusNoContent {
				assert.Equal(t, uint(5), gotID)
			}
		})
	}
}

func TestCurrentUser(t *testing.T) {
	t.Parallel()

	mw, err := EnsureValidToken(testJWT, zap.NewNop())
	require.NoError(t, err)

	users := usersByID{1: {ID: 1, Name: "Ana", Role: models.RoleUser}}

	var got *models.User
	handler := mw(CurrentUser(users, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = utils.CurrentUser(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})))

	tests := []struct {
		name   string
		userID uint
		want   int
	}{
		{name: "known user", userID: 1, want: http.StatusNoContent},
		{name: "deleted user", userID: 2, want: http.StatusUnauthorized},
		{name: "store failure", userID: 99, want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := auth.CreateToken(testJWT, &models.User{ID: tt.userID}, time.Now())
			require.NoError(t, err)

			r := httptest.NewRequest(http.MethodGet, "/me", nil)
			r.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusNoContent {
				require.NotNil(t, got)
				assert.Equal(t, "Ana", got.Name)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		user *models.User
		want int
	}{
		{name: "admin", user: &models.User{ID: 1, Role: models.RoleAdmin}, want: http.StatusNoContent},
		{name: "learner", user: &models.User{ID: 2, Role: models.RoleUser}, want: http.StatusForbidden},
		{name: "anonymous", want: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/users/list", nil)
			if tt.user != nil {
				r = r.WithContext(utils.WithUser(r.Context(), tt.user))
			}
			w := httptest.NewRecorder()

			RequireAdmin(okHandler).ServeHTTP(w, r)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)

	var seen string
	handler := RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/learning", nil))

	id := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, seen)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	assert.Equal(t, "/learning", fields["path"])
	assert.Equal(t, id, fields["request_id"])

	r := httptest.NewRequest(http.MethodGet, "/learning", nil)
	r.Header.Set(RequestIDHeader, "upstream-id")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, "upstream-id", w.Header().Get(RequestIDHeader))
}
