// Package features provides shared test utilities for UI feature tests.
package features

import (
	"context"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/zest-labs/zest/internal/dataset"
	"github.com/zest-labs/zest/internal/ui/notifier"
)

// FakeProvider is an in-memory dataset.Provider for handler tests. It
// serves a fixed dataset, or a fixed error when Err is set.
type FakeProvider struct {
	DS  *dataset.Dataset
	Err error
	Gen string
	At  time.Time
}

// Get returns the configured dataset or error.
func (p *FakeProvider) Get(_ context.Context) (*dataset.Dataset, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.DS, nil
}

// Generation returns the configured generation ID.
func (p *FakeProvider) Generation() string { return p.Gen }

// LoadedAt returns the configured load time.
func (p *FakeProvider) LoadedAt() time.Time { return p.At }

// TestFixture holds the dependencies handler tests wire into feature
// handlers.
type TestFixture struct {
	Data         *FakeProvider
	SessionStore *sessions.CookieStore
	Notifier     *notifier.Notifier
}

// SetupTestFixture creates a fixture around SampleDataset.
func SetupTestFixture(t *testing.T) *TestFixture {
	t.Helper()
	return &TestFixture{
		Data: &FakeProvider{
			DS:  SampleDataset(t),
			Gen: "test-generation-1",
			At:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		SessionStore: sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!")),
		Notifier:     notifier.New(),
	}
}

// SampleDataset builds a small fixed dataset covering seven locations,
// three restaurant types, and both flag values. With only twelve distinct
// rate values, rate and cost classify as categorical-kind columns.
func SampleDataset(t *testing.T) *dataset.Dataset {
	t.Helper()

	ds, err := dataset.New(
		[]string{
			"Indiranagar", "Indiranagar", "Indiranagar",
			"BTM", "BTM", "BTM",
			"Koramangala", "Koramangala",
			"HSR", "Jayanagar", "Whitefield", "Marathahalli",
		},
		[]string{
			"Casual Dining", "Quick Bites", "Cafe",
			"Quick Bites", "Casual Dining", "Cafe",
			"Casual Dining", "Cafe",
			"Quick Bites", "Casual Dining", "Cafe", "Quick Bites",
		},
		[]string{"Yes", "Yes", "No", "Yes", "No", "Yes", "Yes", "No", "No", "Yes", "No", "Yes"},
		[]string{"Yes", "No", "No", "No", "Yes", "No", "Yes", "No", "No", "No", "Yes", "No"},
		[]float64{4.1, 3.8, 4.4, 3.2, 3.9, 4.0, 4.6, 4.3, 3.5, 4.2, 3.7, 3.1},
		[]float64{800, 300, 600, 250, 700, 450, 1200, 550, 200, 900, 650, 350},
	)
	require.NoError(t, err)
	return ds
}

// WideDataset builds a dataset with more than CategoricalMaxDistinct
// distinct rate values, so rate classifies as a numeric-kind column.
func WideDataset(t *testing.T) *dataset.Dataset {
	t.Helper()

	n := 25
	locations := make([]string, n)
	restTypes := make([]string, n)
	online := make([]string, n)
	book := make([]string, n)
	rates := make([]float64, n)
	costs := make([]float64, n)
	locNames := []string{"Indiranagar", "BTM", "Koramangala", "HSR", "Jayanagar", "Whitefield"}
	typeNames := []string{"Casual Dining", "Quick Bites", "Cafe"}
	for i := 0; i < n; i++ {
		locations[i] = locNames[i%len(locNames)]
		restTypes[i] = typeNames[i%len(typeNames)]
		if i%2 == 0 {
			online[i] = "Yes"
		} else {
			online[i] = "No"
		}
		if i%3 == 0 {
			book[i] = "Yes"
		} else {
			book[i] = "No"
		}
		rates[i] = 2.5 + 0.1*float64(i)
		costs[i] = 200 + 50*float64(i)
	}

	ds, err := dataset.New(locations, restTypes, online, book, rates, costs)
	require.NoError(t, err)
	return ds
}
