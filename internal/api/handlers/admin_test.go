package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/boe-dawah/boe-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminHandler_ListUsers(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewUserBuilder().WithRegion("Tongi", "Dhaka", "Gazipur").Build(t, ts.DB.DB)
	testutil.NewUserBuilder().WithRegion("Kakrail", "Sylhet", "Sylhet").Build(t, ts.DB.DB)
	_, token, deviceID := testutil.NewUserBuilder().
		WithRole(domain.RoleMarkazAdmin).
		BuildAndLogin(t, ts)

	resp := testutil.DoJSON(t, ts, http.MethodGet, "/admin/users?division=Dhaka", token, deviceID, nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var users []domain.User
	testutil.AssertJSONResponse(t, resp, &users)
	require.Len(t, users, 1)
	assert.Equal(t, "Gazipur", users[0].District)

	resp2 := testutil.DoJSON(t, ts, http.MethodGet, "/admin/users?role=notarole", token, deviceID, nil)
	defer resp2.Body.Close()
	testutil.AssertStatusCode(t, resp2, http.StatusBadRequest)
}

func TestAdminHandler_ApprovalFlow(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, adminToken, adminDevice := testutil.NewUserBuilder().
		WithRole(domain.RoleCentralAdmin).
		BuildAndLogin(t, ts)

	// A fresh registration cannot log in yet
	register := map[string]string{
		"email":    "pending@boe.example",
		"password": "password123",
		"name":     "Pending Dayee",
	}
	resp := testutil.DoJSON(t, ts, http.MethodPost, "/auth/register", "", "", register)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp2 := testutil.LoginRequest(t, ts, register["email"], register["password"], "device-p")
	defer resp2.Body.Close()
	testutil.AssertStatusCode(t, resp2, http.StatusForbidden)

	// Central admin approves, then login succeeds
	resp3 := testutil.DoJSON(t, ts, http.MethodGet, "/admin/users?role=dayee", adminToken, adminDevice, nil)
	defer resp3.Body.Close()
	var users []domain.User
	testutil.AssertJSONResponse(t, resp3, &users)
	require.Len(t, users, 1)

	approved := true
	resp4 := testutil.DoJSON(t, ts, http.MethodPatch, fmt.Sprintf("/admin/users/%s", users[0].ID),
		adminToken, adminDevice, map[string]interface{}{"approved": approved})
	defer resp4.Body.Close()
	testutil.AssertStatusCode(t, resp4, http.StatusOK)

	token := testutil.Login(t, ts, register["email"], register["password"], "device-p")
	assert.NotEmpty(t, token)
}

func TestAdminHandler_UpdateUser_RequiresCentralAdmin(t *testing.T) {
	ts := testutil.NewTestServer(t)

	target, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	_, token, deviceID := testutil.NewUserBuilder().
		WithRole(domain.RoleDivisionAdmin).
		BuildAndLogin(t, ts)

	resp := testutil.DoJSON(t, ts, http.MethodPatch, fmt.Sprintf("/admin/users/%s", target.ID),
		token, deviceID, map[string]interface{}{"role": "markazadmin"})
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusForbidden)
}

func TestEventHandler_AudienceVisibility(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, adminToken, adminDevice := testutil.NewUserBuilder().
		WithRole(domain.RoleCentralAdmin).
		BuildAndLogin(t, ts)
	_, dayeeToken, dayeeDevice := testutil.NewUserBuilder().BuildAndLogin(t, ts)

	create := func(title string, audience []string) {
		resp := testutil.DoJSON(t, ts, http.MethodPost, "/events", adminToken, adminDevice, map[string]interface{}{
			"title":     title,
			"eventDate": "2026-09-01",
			"audience":  audience,
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	create("Ijtema prep", []string{"dayee"})
	create("Admin sync", []string{"centraladmin", "divisionadmin"})

	resp := testutil.DoJSON(t, ts, http.MethodGet, "/events", dayeeToken, dayeeDevice, nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var events []domain.CalendarEvent
	testutil.AssertJSONResponse(t, resp, &events)
	require.Len(t, events, 1)
	assert.Equal(t, "Ijtema prep", events[0].Title)

	// A dayee cannot create events
	resp2 := testutil.DoJSON(t, ts, http.MethodPost, "/events", dayeeToken, dayeeDevice, map[string]interface{}{
		"title":     "Unauthorized",
		"eventDate": "2026-09-02",
	})
	defer resp2.Body.Close()
	testutil.AssertStatusCode(t, resp2, http.StatusForbidden)
}
