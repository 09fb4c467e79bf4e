package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/islomjonovabdulazim/center_dashboard/dashboard"
)

func TestLoginPopulatesSessionAndForwardsToken(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", loginHandler("student"))
	mux.HandleFunc("/student/assistants", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	app, store := newTestApp(t, srv.URL)

	res := login(t, app)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, "Aisha Karimova", res.UserInfo.FullName)
	assert.Equal(t, "student", res.UserInfo.Role)
	assert.Equal(t, dashboard.SectionBookSession, res.State.Section)
	assert.Equal(t, 0, res.State.Refresh)

	// every subsequent request carries the upstream-issued bearer token
	resp := doJSON(t, app, http.MethodGet, "/student/assistants", res.Token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bearer upstream-token-1", gotAuth)
}

func TestLoginBadCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	app, store := newTestApp(t, srv.URL)

	resp := doJSON(t, app, http.MethodPost, "/auth/login", "", `{"phone":"+998990330919","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, store.Len())
}

func TestLoginRequiredFields(t *testing.T) {
	srv := httptest.NewServer(http.NewServeMux())
	defer srv.Close()

	app, _ := newTestApp(t, srv.URL)

	resp := doJSON(t, app, http.MethodPost, "/auth/login", "", `{"phone":"+998990330919"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpstream401ClearsSessionEverywhere(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", loginHandler("student"))
	mux.HandleFunc("/student/assistants", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	app, store := newTestApp(t, srv.URL)
	res := login(t, app)
	require.Equal(t, 1, store.Len())

	resp := doJSON(t, app, http.MethodGet, "/student/assistants", res.Token, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, store.Len())

	// the wiped session is gone for good; the JWT alone no longer helps
	resp = doJSON(t, app, http.MethodGet, "/auth/me", res.Token, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogout(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", loginHandler("admin"))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	app, store := newTestApp(t, srv.URL)
	res := login(t, app)

	resp := doJSON(t, app, http.MethodPost, "/auth/logout", res.Token, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, store.Len())

	resp = doJSON(t, app, http.MethodGet, "/auth/me", res.Token, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMissingTokenRejected(t *testing.T) {
	srv := httptest.NewServer(http.NewServeMux())
	defer srv.Close()

	app, _ := newTestApp(t, srv.URL)

	resp := doJSON(t, app, http.MethodGet, "/auth/me", "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/auth/me", "not-a-jwt", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRoleMismatchedNavigationForbidden(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", loginHandler("student"))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	app, _ := newTestApp(t, srv.URL)
	res := login(t, app)

	for _, path := range []string{"/admin/learning-centers", "/manager/stats", "/assistant/availability"} {
		resp := doJSON(t, app, http.MethodGet, path, res.Token, "")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, path)
	}
}
