package univariate

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zest-labs/zest/internal/analytics"
	"github.com/zest-labs/zest/internal/charts"
	"github.com/zest-labs/zest/internal/dataset"
	"github.com/zest-labs/zest/internal/ui/features"
)

func setupTestHandlers(t *testing.T) (*Handlers, *features.TestFixture) {
	t.Helper()

	fixture := features.SetupTestFixture(t)
	handlers := NewHandlers(fixture.Data, fixture.SessionStore)
	return handlers, fixture
}

func analyze(t *testing.T, h *Handlers, target string) (int, Analysis) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)

	var got Analysis
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	}
	return rec.Code, got
}

func TestAnalyze_DefaultColumn(t *testing.T) {
	h, _ := setupTestHandlers(t)

	code, got := analyze(t, h, "/api/univariate")

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "rate", got.Column)
	// Twelve distinct rate values classify as categorical: pie plus counts.
	assert.Equal(t, charts.KindPie, got.Chart.Kind)
	assert.Equal(t, charts.StatsCounts, got.Stats.Kind)
	assert.Nil(t, got.Stats.Summary)
	assert.NotEmpty(t, got.Stats.Counts)
}

func TestAnalyze_CategoricalColumn(t *testing.T) {
	h, _ := setupTestHandlers(t)

	code, got := analyze(t, h, "/api/univariate?col=online_order&loc=BTM")

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "online_order", got.Column)
	assert.Equal(t, charts.KindPie, got.Chart.Kind)
	require.Equal(t, charts.StatsCounts, got.Stats.Kind)
	// BTM rows: two online, one not.
	assert.Contains(t, got.Stats.Counts, analytics.ValueCount{Value: "Yes", Count: 2})
}

func TestAnalyze_NumericColumnDescribes(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	fixture.Data.DS = features.WideDataset(t)

	code, got := analyze(t, h, "/api/univariate?col=rate")

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, charts.KindHistogram, got.Chart.Kind)
	assert.Equal(t, 30, got.Chart.Bins)
	require.Equal(t, charts.StatsDescribe, got.Stats.Kind)
	require.NotNil(t, got.Stats.Summary)
	assert.Equal(t, 25, got.Stats.Summary.Count)
	assert.Equal(t, "3.70", got.Stats.Summary.Mean)
	assert.Equal(t, "2.50", got.Stats.Summary.Min)
	assert.Equal(t, "4.90", got.Stats.Summary.Max)
}

func TestAnalyze_SingleRowStdIsNaNString(t *testing.T) {
	h, fixture := setupTestHandlers(t)

	// Twenty-one distinct costs keep the column numeric-kind; the Solo
	// location contributes exactly one row.
	n := 21
	locations := make([]string, n)
	restTypes := make([]string, n)
	online := make([]string, n)
	book := make([]string, n)
	rates := make([]float64, n)
	costs := make([]float64, n)
	for i := 0; i < n; i++ {
		locations[i] = "Indiranagar"
		restTypes[i] = "Cafe"
		online[i] = "Yes"
		book[i] = "No"
		rates[i] = 4.0
		costs[i] = float64(100 + 10*i)
	}
	locations[n-1] = "Solo"
	ds, err := dataset.New(locations, restTypes, online, book, rates, costs)
	require.NoError(t, err)
	fixture.Data.DS = ds

	code, got := analyze(t, h, "/api/univariate?col=cost&loc=Solo")

	require.Equal(t, http.StatusOK, code)
	require.Equal(t, charts.StatsDescribe, got.Stats.Kind)
	require.NotNil(t, got.Stats.Summary)
	assert.Equal(t, 1, got.Stats.Summary.Count)
	assert.Equal(t, "NaN", got.Stats.Summary.Std)
}

func TestAnalyze_UnknownColumn(t *testing.T) {
	h, _ := setupTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/univariate?col=votes", nil)
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown column")
}

func TestAnalyze_LoadError(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	fixture.Data.Err = errors.New("file vanished")

	req := httptest.NewRequest(http.MethodGet, "/api/univariate", nil)
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
