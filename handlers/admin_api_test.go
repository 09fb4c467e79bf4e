package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/islomjonovabdulazim/center_dashboard/dashboard"
	"github.com/islomjonovabdulazim/center_dashboard/models"
)

func TestCreateCenterAndList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", loginHandler("admin"))
	mux.HandleFunc("/admin/learning-centers", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"message": "Markaz yaratildi"}`))
			return
		}
		w.Write([]byte(`[{"id": 1, "name": "Najot Ta'lim", "total_users": 120, "created_date": "2024-01-15"}]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	app, _ := newTestApp(t, srv.URL)
	res := login(t, app)
	require.Equal(t, dashboard.SectionCenters, res.State.Section)

	resp := doJSON(t, app, http.MethodPost, "/admin/learning-centers", res.Token, `{"name": ""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/admin/learning-centers", res.Token, `{"name": "Najot Ta'lim"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		Message string          `json:"message"`
		State   dashboard.State `json:"state"`
	}
	decodeBody(t, resp, &out)
	assert.Equal(t, "Markaz yaratildi", out.Message)
	assert.Equal(t, 1, out.State.Refresh)

	resp = doJSON(t, app, http.MethodGet, "/admin/learning-centers", res.Token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var centers []models.LearningCenter
	decodeBody(t, resp, &centers)
	require.Len(t, centers, 1)
	assert.Equal(t, "Najot Ta'lim", centers[0].Name)
	assert.Equal(t, 120, centers[0].TotalUsers)
}

func TestCreateUserValidation(t *testing.T) {
	upstreamHit := false
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", loginHandler("manager"))
	mux.HandleFunc("/manager/users", func(w http.ResponseWriter, r *http.Request) {
		upstreamHit = true
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message": "Foydalanuvchi yaratildi"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	app, _ := newTestApp(t, srv.URL)
	res := login(t, app)

	// bad phone format
	resp := doJSON(t, app, http.MethodPost, "/manager/users", res.Token,
		`{"fullname": "Aziz Tashkentov", "phone": "901234567", "password": "secret", "role": "student", "subject_field": "Python"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// managers cannot be created from the dashboard
	resp = doJSON(t, app, http.MethodPost, "/manager/users", res.Token,
		`{"fullname": "Aziz Tashkentov", "phone": "+998901234567", "password": "secret", "role": "manager", "subject_field": "Python"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, upstreamHit)

	resp = doJSON(t, app, http.MethodPost, "/manager/users", res.Token,
		`{"fullname": "Aziz Tashkentov", "phone": "+998901234567", "password": "secret", "role": "student", "subject_field": "Python"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, upstreamHit)
}

func TestListUsersRoleFilter(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", loginHandler("manager"))
	mux.HandleFunc("/manager/users", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "assistant", r.URL.Query().Get("role"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 4, "fullname": "Bobur Aliyev", "phone": "+998930001122", "subject_field": "Python", "active_status": true}]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	app, _ := newTestApp(t, srv.URL)
	res := login(t, app)

	resp := doJSON(t, app, http.MethodGet, "/manager/users?role=assistant", res.Token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users []models.CenterUser
	decodeBody(t, resp, &users)
	require.Len(t, users, 1)
	assert.Equal(t, "Bobur Aliyev", users[0].FullName)
	assert.True(t, users[0].ActiveStatus)

	resp = doJSON(t, app, http.MethodGet, "/manager/users?role=admin", res.Token, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetStatsPassthrough(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", loginHandler("manager"))
	mux.HandleFunc("/manager/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"center_totals": {"sessions_this_month": 42, "active_assistants": 5, "active_students": 60},
			"assistants": [{"fullname": "Bobur Aliyev", "subject": "Python", "avg_rating": 4.6, "total_sessions": 17}],
			"popular_subjects": [{"subject": "Python", "booking_count": 30}],
			"peak_hours": [{"hour": 16, "session_count": 9}]
		}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	app, _ := newTestApp(t, srv.URL)
	res := login(t, app)

	resp := doJSON(t, app, http.MethodGet, "/manager/stats", res.Token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats models.CenterStats
	decodeBody(t, resp, &stats)
	assert.Equal(t, 42, stats.CenterTotals.SessionsThisMonth)
	assert.Equal(t, 5, stats.CenterTotals.ActiveAssistants)
	assert.NotEmpty(t, stats.PopularSubjects)
	assert.NotEmpty(t, stats.PeakHours)
}
