package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/advisor"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/analytics"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/auth"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/dto"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/application/usecase"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/infrastructure/memory"
	apphttp "github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/internal/interfaces/http"
	"github.com/Ramya934109/Automated-Car-Catalog-System-for-Enhanced-Showroom-Management/pkg/logger"
)

// cannedAdvisor always answers with the same line, no external calls.
type cannedAdvisor struct{ reply string }

func (a *cannedAdvisor) Recommend(_ context.Context, _ string) (string, error) {
	return a.reply, nil
}

// newTestApp wires the full API against the default seed in demo auth mode,
// the same assembly main performs.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	seed := memory.DefaultSeed()

	vehicleRepo := memory.NewVehicleRepository(seed.Vehicles)
	bookingRepo := memory.NewBookingRepository(seed.Bookings)
	userRepo := memory.NewUserRepository(seed.Users)

	advisorManager := advisor.NewManager(&cannedAdvisor{reply: "The EQE 350+ fits that budget."}, 2*time.Second, log)
	navigationUC := usecase.NewNavigationUseCase()

	jwtCfg := auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}
	authUC := auth.NewUseCase(auth.NewDemoAuthenticator(), userRepo, jwtCfg, true, advisorManager, navigationUC)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       authUC,
		CatalogUC:    usecase.NewCatalogUseCase(vehicleRepo),
		BookingUC:    usecase.NewBookingUseCase(bookingRepo, log),
		NavigationUC: navigationUC,
		PanelUC:      usecase.NewPanelUseCase(),
		DashboardUC:  analytics.NewDashboardUseCase(bookingRepo, vehicleRepo),
		Advisor:      advisorManager,
		JWTSecret:    testJWTSecret,
	})
	return app
}

func jsonRequest(t *testing.T, method, target, token string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// loginDemo performs a demo login and returns the token.
func loginDemo(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    email,
		Password: "anything-goes",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var session dto.SessionResponse
	decodeBody(t, resp, &session)
	require.NotEmpty(t, session.Token)
	return session.Token
}

func TestLogin_DemoModeIssuesSession(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "sarah@showroom.io",
		Password: "whatever",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var session dto.SessionResponse
	decodeBody(t, resp, &session)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "SARAH", session.User.Name)
	assert.Equal(t, "sarah@showroom.io", session.User.Email)
	assert.Equal(t, "admin", session.User.Role)
}

func TestLogin_EmptyEmailRejected(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: "   ",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCatalog_RequiresToken(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/catalog/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCatalog_ListAndFilter(t *testing.T) {
	app := newTestApp(t)
	token := loginDemo(t, app, "demo@showroom.io")

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/catalog/", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page dto.CatalogResponse
	decodeBody(t, resp, &page)
	assert.Len(t, page.Vehicles, 4)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, "Tesla Model S", page.Vehicles[0].Model)

	// Filtered list still reports the unfiltered total.
	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/catalog/?fuel_type=EV", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	decodeBody(t, resp, &page)
	assert.Len(t, page.Vehicles, 2)
	assert.Equal(t, 4, page.Total)
}

func TestCatalog_GetByIDNotFound(t *testing.T) {
	app := newTestApp(t)
	token := loginDemo(t, app, "demo@showroom.io")

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/catalog/999", token, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBookings_CreateThenApprove(t *testing.T) {
	app := newTestApp(t)
	token := loginDemo(t, app, "manager@showroom.io") // demo logins carry the admin role

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/bookings/", token, dto.CreateBookingRequest{
		CustomerName: "Carlos Vega",
		CarModel:     "BMW M4 Competition",
		Date:         "2026-09-15",
		Priority:     "High",
		AssignedTo:   "Mike Ross",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.BookingResponse
	decodeBody(t, resp, &created)
	assert.Equal(t, "Pending", created.Status)
	require.NotEmpty(t, created.ID)

	resp, err = app.Test(jsonRequest(t, http.MethodPatch, "/api/bookings/"+created.ID+"/status", token,
		dto.UpdateBookingStatusRequest{Status: "Approved"}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated dto.BookingResponse
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Approved", updated.Status)
	assert.Equal(t, created.CustomerName, updated.CustomerName)
}

func TestBookings_InvalidTransitionIs409(t *testing.T) {
	app := newTestApp(t)
	token := loginDemo(t, app, "demo@showroom.io")

	// B3 is Completed in the seed; completed bookings never move again.
	resp, err := app.Test(jsonRequest(t, http.MethodPatch, "/api/bookings/B3/status", token,
		dto.UpdateBookingStatusRequest{Status: "Approved"}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "INVALID_TRANSITION", body.Code)
}

func TestBookings_UnknownIDIs404(t *testing.T) {
	app := newTestApp(t)
	token := loginDemo(t, app, "demo@showroom.io")

	resp, err := app.Test(jsonRequest(t, http.MethodPatch, "/api/bookings/nope/status", token,
		dto.UpdateBookingStatusRequest{Status: "Approved"}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDashboard_StatsReflectSeed(t *testing.T) {
	app := newTestApp(t)
	token := loginDemo(t, app, "demo@showroom.io")

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/dashboard/stats", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats dto.DashboardStatsDTO
	decodeBody(t, resp, &stats)
	assert.Equal(t, 1, stats.TotalSales)
	assert.Equal(t, 1, stats.PendingApprovals)
	assert.Equal(t, 1, stats.ActiveTestDrives)
	assert.Equal(t, 4, stats.InventoryCount)
	assert.NotEmpty(t, stats.FuelTypeMix)
}

func TestAdvisor_SubmitAndTranscript(t *testing.T) {
	app := newTestApp(t)
	token := loginDemo(t, app, "demo@showroom.io")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/advisor/messages", token,
		dto.AdvisorMessageRequest{Query: "Which EV under 80k?"}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reply dto.AdvisoryTurnDTO
	decodeBody(t, resp, &reply)
	assert.Equal(t, "advisor", reply.Speaker)
	assert.Equal(t, "The EQE 350+ fits that budget.", reply.Text)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/advisor/messages", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var transcript dto.TranscriptResponse
	decodeBody(t, resp, &transcript)
	require.Len(t, transcript.Turns, 2)
	assert.Equal(t, "user", transcript.Turns[0].Speaker)
	assert.Equal(t, "Which EV under 80k?", transcript.Turns[0].Text)
	assert.Equal(t, "advisor", transcript.Turns[1].Speaker)
	assert.False(t, transcript.Waiting)
}

func TestAdvisor_BlankQueryRejected(t *testing.T) {
	app := newTestApp(t)
	token := loginDemo(t, app, "demo@showroom.io")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/advisor/messages", token,
		dto.AdvisorMessageRequest{Query: "   "}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestNavigation_SelectAndRead(t *testing.T) {
	app := newTestApp(t)
	token := loginDemo(t, app, "demo@showroom.io")

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/navigation", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var nav dto.NavigationResponse
	decodeBody(t, resp, &nav)
	assert.Equal(t, "overview", nav.Active)
	assert.Contains(t, nav.Panels, "advisor")

	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/api/navigation", token,
		dto.SelectPanelRequest{Panel: "analytics"}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	decodeBody(t, resp, &nav)
	assert.Equal(t, "analytics", nav.Active)
}

func TestNavigation_UnknownPanelRejected(t *testing.T) {
	app := newTestApp(t)
	token := loginDemo(t, app, "demo@showroom.io")

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/navigation", token,
		dto.SelectPanelRequest{Panel: "garage"}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogout_ClearsAdvisoryAndNavigation(t *testing.T) {
	app := newTestApp(t)
	token := loginDemo(t, app, "demo@showroom.io")

	// Build some per-user state.
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/advisor/messages", token,
		dto.AdvisorMessageRequest{Query: "Anything diesel?"}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/api/navigation", token,
		dto.SelectPanelRequest{Panel: "catalog"}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/auth/logout", token, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// The token itself stays valid (stateless JWT); the server-side state is gone.
	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/advisor/messages", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var transcript dto.TranscriptResponse
	decodeBody(t, resp, &transcript)
	assert.Empty(t, transcript.Turns)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/navigation", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var nav dto.NavigationResponse
	decodeBody(t, resp, &nav)
	assert.Equal(t, "overview", nav.Active)
}

func TestPanels_StaticContent(t *testing.T) {
	app := newTestApp(t)
	token := loginDemo(t, app, "demo@showroom.io")

	for _, path := range []string{"/api/panels/overview", "/api/panels/architecture"} {
		resp, err := app.Test(jsonRequest(t, http.MethodGet, path, token, nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)

		var panel dto.PanelContentDTO
		decodeBody(t, resp, &panel)
		assert.NotEmpty(t, panel.Title, path)
		assert.NotEmpty(t, panel.Sections, path)
	}
}
