package home

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zest-labs/zest/internal/ui/features"
)

func setupTestHandlers(t *testing.T, previewLimit int) (*Handlers, *features.TestFixture) {
	t.Helper()

	fixture := features.SetupTestFixture(t)
	handlers := NewHandlers(fixture.Data, fixture.SessionStore, previewLimit)
	return handlers, fixture
}

func TestOverview_DefaultSelection(t *testing.T) {
	h, _ := setupTestHandlers(t, 100)

	req := httptest.NewRequest(http.MethodGet, "/api/home", nil)
	rec := httptest.NewRecorder()

	h.Overview(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got Overview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	// The first five distinct locations cover ten of the twelve rows.
	assert.Equal(t, 10, got.RowCount)
	assert.Equal(t, "10", got.KPIs.TotalRestaurants)
	assert.Len(t, got.Preview.Rows, 10)
}

func TestOverview_ExplicitSelection(t *testing.T) {
	h, _ := setupTestHandlers(t, 100)

	req := httptest.NewRequest(http.MethodGet, "/api/home?loc=BTM", nil)
	rec := httptest.NewRecorder()

	h.Overview(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got Overview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, 3, got.RowCount)
	assert.Equal(t, "3", got.KPIs.TotalRestaurants)
	assert.Equal(t, "3.70/5", got.KPIs.AvgRating)
	assert.Equal(t, "467 INR", got.KPIs.AvgCost)
	assert.Equal(t, "2", got.KPIs.OnlineOrders)

	require.Len(t, got.Preview.Rows, 3)
	assert.Equal(t, []string{"BTM", "Quick Bites", "Yes", "No", "3.2", "250"}, got.Preview.Rows[0])
}

func TestOverview_PreviewLimit(t *testing.T) {
	h, _ := setupTestHandlers(t, 2)

	req := httptest.NewRequest(http.MethodGet, "/api/home?loc=BTM", nil)
	rec := httptest.NewRecorder()

	h.Overview(rec, req)

	var got Overview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, 3, got.RowCount, "row count reflects the full filtered view")
	assert.Len(t, got.Preview.Rows, 2, "preview is capped")
}

func TestOverview_SelectionRemembered(t *testing.T) {
	h, _ := setupTestHandlers(t, 100)

	// First request pins the filter and sets the session cookie.
	first := httptest.NewRequest(http.MethodGet, "/api/home?loc=BTM", nil)
	firstRec := httptest.NewRecorder()
	h.Overview(firstRec, first)
	require.Equal(t, http.StatusOK, firstRec.Code)
	cookies := firstRec.Result().Cookies()
	require.NotEmpty(t, cookies, "explicit selection must set a session cookie")

	// Second request carries only the cookie.
	second := httptest.NewRequest(http.MethodGet, "/api/home", nil)
	for _, c := range cookies {
		second.AddCookie(c)
	}
	secondRec := httptest.NewRecorder()
	h.Overview(secondRec, second)

	var got Overview
	require.NoError(t, json.Unmarshal(secondRec.Body.Bytes(), &got))
	assert.Equal(t, 3, got.RowCount, "the remembered selection applies")
}

func TestOverview_LoadError(t *testing.T) {
	h, fixture := setupTestHandlers(t, 100)
	fixture.Data.Err = errors.New("file vanished")

	req := httptest.NewRequest(http.MethodGet, "/api/home", nil)
	rec := httptest.NewRecorder()

	h.Overview(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Data could not be loaded")
}

func TestMeta(t *testing.T) {
	h, fixture := setupTestHandlers(t, 100)

	req := httptest.NewRequest(http.MethodGet, "/api/meta", nil)
	rec := httptest.NewRecorder()

	h.Meta(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got Meta
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, fixture.Data.Gen, got.Generation)
	assert.Equal(t, 12, got.Rows)
	assert.Len(t, got.Locations, 7)
	assert.Equal(t, []string{"Indiranagar", "BTM", "Koramangala", "HSR", "Jayanagar"}, got.DefaultSelection)
	assert.Contains(t, got.ColumnChoices, "rate")
	assert.NotContains(t, got.ColumnChoices, "location", "the filter dimension is not an analysis choice")
	assert.Len(t, got.Columns, 6)
}
