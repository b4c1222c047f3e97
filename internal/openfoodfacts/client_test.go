package openfoodfacts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ecocart/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&config.OpenFoodFactsConfig{
		BaseURL:        baseURL,
		Timeout:        2 * time.Second,
		RequestsPerSec: 100,
	}, zap.NewNop())
}

func TestLookup_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cgi/search.pl", r.URL.Path)
		assert.Equal(t, "oat milk", r.URL.Query().Get("search_terms"))
		assert.Equal(t, "1", r.URL.Query().Get("json"))
		assert.Equal(t, "EcoCart/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"products": [{
				"product_name": "Organic Oat Milk",
				"ecoscore_score": 82.5,
				"ecoscore_grade": "a",
				"packaging": "Carton",
				"labels_tags": ["en:organic", "en:vegan", "en:fair-trade", "en:gluten-free"],
				"additives_tags": ["en:e322"],
				"origins": "Sweden",
				"manufacturing_places": "Malmo"
			}]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ext, err := client.Lookup(context.Background(), "oat milk")
	require.NoError(t, err)

	assert.Equal(t, "Organic Oat Milk", ext.ProductName)
	assert.Equal(t, 82.5, ext.Ecoscore)
	assert.Equal(t, "a", ext.EcoscoreGrade)
	assert.Equal(t, "Carton", ext.Packaging)
	assert.Equal(t, 1, ext.AdditivesCount)
	assert.Equal(t, "Sweden", ext.Origins)
	assert.Equal(t, "Malmo", ext.ManufacturingPlaces)
}

func TestLookup_DescriptionComposition(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"products": [{
				"product_name": "Snack Bar",
				"ecoscore_grade": "B",
				"packaging": "Plastic wrap",
				"labels_tags": ["one", "two", "three", "four"],
				"additives_tags": ["a", "b", "c", "d", "e", "f"]
			}]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ext, err := client.Lookup(context.Background(), "snack")
	require.NoError(t, err)

	assert.Contains(t, ext.Description, "Good environmental rating")
	assert.Contains(t, ext.Description, "Contains 6 additives.")
	assert.Contains(t, ext.Description, "High number of additives may impact eco-score.")
	assert.Contains(t, ext.Description, "Packaging: Plastic wrap.")
	// Only the first three labels are listed
	assert.Contains(t, ext.Description, "Certified with: one, two, three.")
	assert.NotContains(t, ext.Description, "four")
}

func TestLookup_FallbackDescription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": [{"product_name": "Mystery Item"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ext, err := client.Lookup(context.Background(), "mystery")
	require.NoError(t, err)
	assert.Equal(t, "Basic sustainability information available.", ext.Description)
}

func TestLookup_EmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Lookup(context.Background(), "nothing matches this")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookup_EmptyNameShortCircuits(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Lookup(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, called)
}

func TestLookup_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Lookup(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrUpstreamFailed)
}

func TestLookup_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": [`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Lookup(context.Background(), "anything")
	assert.Error(t, err)
}

func TestLookup_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Lookup(ctx, "anything")
	assert.Error(t, err)
}
