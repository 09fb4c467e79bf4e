package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/islomjonovabdulazim/center_dashboard/dashboard"
	"github.com/islomjonovabdulazim/center_dashboard/handlers"
	"github.com/islomjonovabdulazim/center_dashboard/routes"
	"github.com/islomjonovabdulazim/center_dashboard/session"
	"github.com/islomjonovabdulazim/center_dashboard/upstream"
)

// newTestApp wires the full route table against a mock upstream and an
// in-memory session store.
func newTestApp(t *testing.T, upstreamURL string) (*fiber.App, *session.MemoryStore) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	store := session.NewMemoryStore()
	handlers.Setup(upstream.New(upstreamURL), store)

	app := fiber.New()
	routes.Setup(app, store)
	return app, store
}

// loginHandler is the mock upstream's /auth/login for the given role.
func loginHandler(role string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"token": "upstream-token-1",
			"user_info": {"id": 7, "fullname": "Aisha Karimova", "phone": "+998990330919", "role": %q, "subject_field": "Python"}
		}`, role)
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path, token, body string) *http.Response {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

type loginResult struct {
	Token    string `json:"token"`
	UserInfo struct {
		ID       int    `json:"id"`
		FullName string `json:"fullname"`
		Role     string `json:"role"`
	} `json:"user_info"`
	State dashboard.State `json:"state"`
}

func login(t *testing.T, app *fiber.App) loginResult {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/auth/login", "", `{"phone":"+998990330919","password":"aisha"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res loginResult
	decodeBody(t, resp, &res)
	require.NotEmpty(t, res.Token)
	return res
}
