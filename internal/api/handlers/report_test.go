package handlers_test

import (
	"net/http"
	"testing"

	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/boe-dawah/boe-backend/internal/service"
	"github.com/boe-dawah/boe-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportHandler_SubmitAndToday(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token, deviceID := testutil.NewUserBuilder().BuildAndLogin(t, ts)

	// Nothing submitted yet
	resp := testutil.DoJSON(t, ts, http.MethodGet, "/reports/amoli?mode=today", token, deviceID, nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var probe map[string]bool
	testutil.AssertJSONResponse(t, resp, &probe)
	assert.False(t, probe["submitted"])

	// First submission succeeds
	payload := map[string]int{"tahajjud": 1, "jamatSalat": 3}
	resp2 := testutil.DoJSON(t, ts, http.MethodPost, "/reports/amoli", token, deviceID, payload)
	defer resp2.Body.Close()
	testutil.AssertStatusCode(t, resp2, http.StatusCreated)

	var created domain.AmoliReport
	testutil.AssertJSONResponse(t, resp2, &created)
	assert.Equal(t, 1, created.Tahajjud)
	assert.Equal(t, 3, created.JamatSalat)
	assert.False(t, created.ReportDate.IsZero())

	// The same day rejects a second submission
	resp3 := testutil.DoJSON(t, ts, http.MethodPost, "/reports/amoli", token, deviceID, payload)
	defer resp3.Body.Close()
	testutil.AssertErrorResponse(t, resp3, http.StatusConflict, "already submitted")

	// The probe now reports true
	resp4 := testutil.DoJSON(t, ts, http.MethodGet, "/reports/amoli?mode=today", token, deviceID, nil)
	defer resp4.Body.Close()
	testutil.AssertJSONResponse(t, resp4, &probe)
	assert.True(t, probe["submitted"])

	// A different kind is still open for the day
	resp5 := testutil.DoJSON(t, ts, http.MethodPost, "/reports/moktob", token, deviceID, map[string]int{"newMoktob": 2})
	defer resp5.Body.Close()
	testutil.AssertStatusCode(t, resp5, http.StatusCreated)
}

func TestReportHandler_Submit_Empty(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token, deviceID := testutil.NewUserBuilder().BuildAndLogin(t, ts)

	resp := testutil.DoJSON(t, ts, http.MethodPost, "/reports/dawati", token, deviceID, map[string]int{})
	defer resp.Body.Close()
	testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "no data")
}

func TestReportHandler_UpdateToday(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token, deviceID := testutil.NewUserBuilder().BuildAndLogin(t, ts)

	// Updating before submitting is a 404
	resp := testutil.DoJSON(t, ts, http.MethodPut, "/reports/amoli/today", token, deviceID, map[string]int{"tahajjud": 2})
	defer resp.Body.Close()
	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "no report submitted today")

	resp2 := testutil.DoJSON(t, ts, http.MethodPost, "/reports/amoli", token, deviceID, map[string]int{"tahajjud": 1})
	defer resp2.Body.Close()
	require.Equal(t, http.StatusCreated, resp2.StatusCode)

	var created domain.AmoliReport
	testutil.AssertJSONResponse(t, resp2, &created)

	resp3 := testutil.DoJSON(t, ts, http.MethodPut, "/reports/amoli/today", token, deviceID, map[string]int{"tahajjud": 2, "ishraq": 1})
	defer resp3.Body.Close()
	testutil.AssertStatusCode(t, resp3, http.StatusOK)

	var updated domain.AmoliReport
	testutil.AssertJSONResponse(t, resp3, &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 2, updated.Tahajjud)
	assert.Equal(t, 1, updated.Ishraq)
	assert.True(t, created.ReportDate.Equal(updated.ReportDate))
}

func TestReportHandler_AdminEndpoints(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, dayeeToken, dayeeDevice := testutil.NewUserBuilder().
		WithRegion("Tongi", "Dhaka", "Gazipur").
		BuildAndLogin(t, ts)
	_, adminToken, adminDevice := testutil.NewUserBuilder().
		WithRole(domain.RoleDivisionAdmin).
		BuildAndLogin(t, ts)

	resp := testutil.DoJSON(t, ts, http.MethodPost, "/reports/dawati", dayeeToken, dayeeDevice,
		map[string]int{"nonMuslimDawat": 4, "muslimDawat": 2})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// A dayee cannot reach the admin surface
	resp2 := testutil.DoJSON(t, ts, http.MethodGet, "/admin/reports/dawati", dayeeToken, dayeeDevice, nil)
	defer resp2.Body.Close()
	testutil.AssertStatusCode(t, resp2, http.StatusForbidden)

	// The admin list filters by region
	resp3 := testutil.DoJSON(t, ts, http.MethodGet, "/admin/reports/dawati?division=Dhaka", adminToken, adminDevice, nil)
	defer resp3.Body.Close()
	testutil.AssertStatusCode(t, resp3, http.StatusOK)

	var recs []domain.DawatiReport
	testutil.AssertJSONResponse(t, resp3, &recs)
	require.Len(t, recs, 1)
	assert.Equal(t, 4, recs[0].NonMuslimDawat)

	resp4 := testutil.DoJSON(t, ts, http.MethodGet, "/admin/reports/dawati?division=Sylhet", adminToken, adminDevice, nil)
	defer resp4.Body.Close()
	testutil.AssertJSONResponse(t, resp4, &recs)
	assert.Empty(t, recs)

	// Summary aggregates the numeric fields
	resp5 := testutil.DoJSON(t, ts, http.MethodGet, "/admin/reports/dawati/summary", adminToken, adminDevice, nil)
	defer resp5.Body.Close()
	testutil.AssertStatusCode(t, resp5, http.StatusOK)

	var summary service.ReportSummary
	testutil.AssertJSONResponse(t, resp5, &summary)
	assert.Equal(t, domain.KindDawati, summary.Kind)
	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, 4, summary.Totals["nonMuslimDawat"])
	assert.Equal(t, 2, summary.Totals["muslimDawat"])
}

func TestReportHandler_BadDateFilter(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token, deviceID := testutil.NewUserBuilder().BuildAndLogin(t, ts)

	resp := testutil.DoJSON(t, ts, http.MethodGet, "/reports/amoli?from=28-08-2026", token, deviceID, nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
}
