package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/mwhite7112/woodpantry-cookbook/internal/api"
	"github.com/mwhite7112/woodpantry-cookbook/internal/cookbook"
	"github.com/mwhite7112/woodpantry-cookbook/internal/logging"
	"github.com/mwhite7112/woodpantry-cookbook/internal/mocks"
	"github.com/mwhite7112/woodpantry-cookbook/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// helpers

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := service.New(cookbook.NewMemoryStore(), 0.6)
	return api.NewRouter(svc)
}

func setupMockRouter(t *testing.T) (*mocks.MockStore, http.Handler) {
	t.Helper()
	store := mocks.NewMockStore(t)
	svc := service.New(store, 0.6)
	return store, api.NewRouter(svc)
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

func do(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, jsonBody(t, body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var got map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	return got
}

func postEntry(t *testing.T, router http.Handler, entry map[string]any) {
	t.Helper()
	rec := do(t, router, http.MethodPost, "/entry", entry)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

// ---------------------------------------------------------------------------
// GET /healthz, /metrics
// ---------------------------------------------------------------------------

func TestHealthz(t *testing.T) {
	t.Parallel()
	router := setupRouter(t)

	rec := do(t, router, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestMetrics(t *testing.T) {
	t.Parallel()
	router := setupRouter(t)

	rec := do(t, router, http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cookbook_http_requests_in_flight")
}

// ---------------------------------------------------------------------------
// POST /parse
// ---------------------------------------------------------------------------

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "separators", input: "matcha-milk_tea", want: "Matcha Milk Tea"},
		{name: "plain word", input: "Butter", want: "Butter"},
		{name: "messy", input: "  alpHa-alFRedo  ", want: "Alpha Alfredo"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			router := setupRouter(t)

			rec := do(t, router, http.MethodPost, "/parse", map[string]string{"input": tc.input})

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			var got map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tc.want, got["msg"])
		})
	}
}

func TestParse_Unusable(t *testing.T) {
	t.Parallel()
	router := setupRouter(t)

	rec := do(t, router, http.MethodPost, "/parse", map[string]string{"input": "---"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "this string is cooked", decodeError(t, rec)["error"])
}

func TestParse_InvalidBody(t *testing.T) {
	t.Parallel()
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", decodeError(t, rec)["error"])
}

// ---------------------------------------------------------------------------
// POST /entry
// ---------------------------------------------------------------------------

func TestCreateEntry_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body map[string]any
	}{
		{
			name: "ingredient",
			body: map[string]any{"name": "egg", "type": "ingredient", "cookTime": 2},
		},
		{
			name: "recipe referencing unknown entries",
			body: map[string]any{"name": "omelette", "type": "recipe", "requiredItems": []map[string]any{
				{"name": "egg", "quantity": 3},
			}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			router := setupRouter(t)

			rec := do(t, router, http.MethodPost, "/entry", tc.body)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestCreateEntry_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body map[string]any
		want string
	}{
		{
			name: "missing name",
			body: map[string]any{"type": "ingredient", "cookTime": 1},
			want: "Missing 'name' or 'type'",
		},
		{
			name: "bad type",
			body: map[string]any{"name": "egg", "type": "spice"},
			want: "Invalid type. Must be 'recipe' or 'ingredient'",
		},
		{
			name: "negative cook time",
			body: map[string]any{"name": "egg", "type": "ingredient", "cookTime": -3},
			want: "Ingredient must have a 'cookTime' >= 0",
		},
		{
			name: "cook time not a number",
			body: map[string]any{"name": "egg", "type": "ingredient", "cookTime": "5"},
			want: "invalid request body",
		},
		{
			name: "recipe without items",
			body: map[string]any{"name": "toast", "type": "recipe"},
			want: "Recipe must have a list of 'requiredItems'",
		},
		{
			name: "item quantity missing",
			body: map[string]any{"name": "toast", "type": "recipe", "requiredItems": []map[string]any{{"name": "bread"}}},
			want: "Each requiredItem must have 'name' and 'quantity'",
		},
		{
			name: "duplicate items",
			body: map[string]any{"name": "toast", "type": "recipe", "requiredItems": []map[string]any{
				{"name": "bread", "quantity": 1},
				{"name": "bread", "quantity": 1},
			}},
			want: "Duplicate requiredItem names are not allowed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			router := setupRouter(t)

			rec := do(t, router, http.MethodPost, "/entry", tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.want, decodeError(t, rec)["error"])
		})
	}
}

func TestCreateEntry_Duplicate(t *testing.T) {
	t.Parallel()
	router := setupRouter(t)

	postEntry(t, router, map[string]any{"name": "egg", "type": "ingredient", "cookTime": 2})
	rec := do(t, router, http.MethodPost, "/entry", map[string]any{
		"name": "egg", "type": "recipe", "requiredItems": []any{},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Entry name must be unique", decodeError(t, rec)["error"])
}

func TestCreateEntry_StoreFailure(t *testing.T) {
	t.Parallel()
	store, router := setupMockRouter(t)

	store.EXPECT().Lookup(mock.Anything, "egg").Return(cookbook.Entry{}, errors.New("boom"))

	rec := do(t, router, http.MethodPost, "/entry", map[string]any{"name": "egg", "type": "ingredient", "cookTime": 2})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "failed to add entry", decodeError(t, rec)["error"])
}

// ---------------------------------------------------------------------------
// GET /summary
// ---------------------------------------------------------------------------

func TestSummary_EndToEnd(t *testing.T) {
	t.Parallel()
	router := setupRouter(t)

	postEntry(t, router, map[string]any{"name": "egg", "type": "ingredient", "cookTime": 2})
	postEntry(t, router, map[string]any{"name": "omelette", "type": "recipe", "requiredItems": []map[string]any{
		{"name": "egg", "quantity": 3},
	}})

	rec := do(t, router, http.MethodGet, "/summary?name=omelette", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"name":"omelette","cookTime":6,"ingredients":[{"name":"egg","quantity":3}]}`,
		rec.Body.String())
}

func TestSummary_Nested(t *testing.T) {
	t.Parallel()
	router := setupRouter(t)

	// Recipes may be registered before their dependencies.
	postEntry(t, router, map[string]any{"name": "A", "type": "recipe", "requiredItems": []map[string]any{
		{"name": "B", "quantity": 2},
	}})
	postEntry(t, router, map[string]any{"name": "B", "type": "recipe", "requiredItems": []map[string]any{
		{"name": "C", "quantity": 1},
	}})
	postEntry(t, router, map[string]any{"name": "C", "type": "ingredient", "cookTime": 5})

	rec := do(t, router, http.MethodGet, "/summary?name=A", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"A","cookTime":10,"ingredients":[{"name":"C","quantity":2}]}`, rec.Body.String())
}

func TestSummary_Errors(t *testing.T) {
	t.Parallel()

	seed := []map[string]any{
		{"name": "Egg", "type": "ingredient", "cookTime": 2},
		{"name": "Omelette", "type": "recipe", "requiredItems": []map[string]any{{"name": "Egg", "quantity": 3}}},
		{"name": "Quiche", "type": "recipe", "requiredItems": []map[string]any{
			{"name": "Egg", "quantity": 4},
			{"name": "Omelete", "quantity": 1},
		}},
		{"name": "Loop", "type": "recipe", "requiredItems": []map[string]any{{"name": "Loop", "quantity": 1}}},
	}

	tests := []struct {
		name           string
		query          string
		wantError      string
		wantSuggestion string
	}{
		{name: "missing name parameter", query: "", wantError: "Recipe not found"},
		{name: "unknown recipe", query: "Pancake", wantError: "Recipe not found"},
		{name: "unknown recipe close to a known one", query: "Omellette", wantError: "Recipe not found", wantSuggestion: "Omelette"},
		{name: "ingredient", query: "Egg", wantError: "Requested name is not a recipe"},
		{name: "missing dependency", query: "Quiche", wantError: "Missing ingredient: Omelete", wantSuggestion: "Omelette"},
		{name: "cycle", query: "Loop", wantError: "Cyclic dependency: Loop -> Loop"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			router := setupRouter(t)
			for _, e := range seed {
				postEntry(t, router, e)
			}

			target := "/summary"
			if tc.query != "" {
				target += "?name=" + url.QueryEscape(tc.query)
			}
			rec := do(t, router, http.MethodGet, target, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			got := decodeError(t, rec)
			assert.Equal(t, tc.wantError, got["error"])
			assert.Equal(t, tc.wantSuggestion, got["suggestion"])
		})
	}
}

func TestSummary_OutOfRange(t *testing.T) {
	t.Parallel()
	router := setupRouter(t)

	postEntry(t, router, map[string]any{"name": "lava", "type": "ingredient", "cookTime": 1e300})
	postEntry(t, router, map[string]any{"name": "big", "type": "recipe", "requiredItems": []map[string]any{
		{"name": "lava", "quantity": 1e300},
	}})

	rec := do(t, router, http.MethodGet, "/summary?name=big", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Recipe cook time is too large to compute", decodeError(t, rec)["error"])
}

// Not parallel: swaps the default logger.
func TestServerError_LogsRequestID(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	store, router := setupMockRouter(t)
	store.EXPECT().List(mock.Anything).Return(nil, errors.New("boom"))

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/entries", nil)
	req.Header.Set(logging.RequestIDHeader, id)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var found bool
	for _, line := range bytes.Split(bytes.TrimSpace(logs.Bytes()), []byte("\n")) {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		if entry["msg"] == "failed to list entries" {
			found = true
			assert.Equal(t, id, entry["requestID"])
			assert.Equal(t, "boom", entry["error"])
		}
	}
	assert.True(t, found, "server error was not logged")
}

func TestSummary_StoreFailure(t *testing.T) {
	t.Parallel()
	store, router := setupMockRouter(t)

	store.EXPECT().Lookup(mock.Anything, "omelette").Return(cookbook.Entry{}, errors.New("boom"))

	rec := do(t, router, http.MethodGet, "/summary?name=omelette", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ---------------------------------------------------------------------------
// GET /entries, /entries/{name}
// ---------------------------------------------------------------------------

func TestListEntries(t *testing.T) {
	t.Parallel()
	router := setupRouter(t)

	rec := do(t, router, http.MethodGet, "/entries", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	postEntry(t, router, map[string]any{"name": "toast", "type": "recipe", "requiredItems": []map[string]any{{"name": "bread", "quantity": 2}}})
	postEntry(t, router, map[string]any{"name": "bread", "type": "ingredient", "cookTime": 0})

	rec = do(t, router, http.MethodGet, "/entries", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"name":"bread","type":"ingredient","cookTime":0},
		{"name":"toast","type":"recipe","requiredItems":[{"name":"bread","quantity":2}]}
	]`, rec.Body.String())
}

func TestGetEntry(t *testing.T) {
	t.Parallel()
	router := setupRouter(t)
	postEntry(t, router, map[string]any{"name": "Matcha Milk Tea", "type": "ingredient", "cookTime": 4})

	rec := do(t, router, http.MethodGet, "/entries/Matcha%20Milk%20Tea", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"Matcha Milk Tea","type":"ingredient","cookTime":4}`, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/entries/Matcha%20Milk%20Te", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	got := decodeError(t, rec)
	assert.Equal(t, "Entry not found", got["error"])
	assert.Equal(t, "Matcha Milk Tea", got["suggestion"])
}

func TestListEntries_StoreFailure(t *testing.T) {
	t.Parallel()
	store, router := setupMockRouter(t)

	store.EXPECT().List(mock.Anything).Return(nil, errors.New("boom"))

	rec := do(t, router, http.MethodGet, "/entries", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ---------------------------------------------------------------------------
// rate limiting
// ---------------------------------------------------------------------------

func TestRateLimit(t *testing.T) {
	t.Parallel()
	svc := service.New(cookbook.NewMemoryStore(), 0.6)
	router := api.NewRouter(svc, api.WithRateLimit(0.001, 2))

	for range 2 {
		rec := do(t, router, http.MethodGet, "/entries", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := do(t, router, http.MethodGet, "/entries", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	// Health checks bypass the limiter.
	rec = do(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
