package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/joya-energy/solar-simulation-backend/internal/model"
	"github.com/joya-energy/solar-simulation-backend/internal/testutil"
)

func setupComparisonHandler(t *testing.T) (*ComparisonHandler, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	cs := testutil.NewTestComparisonService(t, db, 1600)
	return NewComparisonHandler(cs), db
}

// withURLParam injects a chi URL parameter into the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// TestComparisonHandler_Compare verifies the POST /api/comparison contract.
//
// WHY: the exactly-one-of sizing rule lives at this boundary; both-set and
// neither-set bodies must be rejected before any calculator runs.
func TestComparisonHandler_Compare(t *testing.T) {
	post := func(t *testing.T, handler *ComparisonHandler, body string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/api/comparison", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		handler.Compare(w, req)
		return w
	}

	t.Run("creates a comparison from a capacity sizing", func(t *testing.T) {
		handler, _ := setupComparisonHandler(t)

		w := post(t, handler, `{"location":"sfax","sizeKwp":100}`)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.ComparisonResult
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.ID == "" {
			t.Error("Expected an assigned ID")
		}
		if response.Calculation.CapexDt != 250000 {
			t.Errorf("Expected CAPEX 250000, got %f", response.Calculation.CapexDt)
		}
		if response.Esco.Type != model.SolutionEsco {
			t.Errorf("Expected ESCO solution tag, got %s", response.Esco.Type)
		}
	})

	t.Run("creates a comparison from a budget sizing", func(t *testing.T) {
		handler, _ := setupComparisonHandler(t)

		w := post(t, handler, `{"location":"tunis","investmentDt":125000}`)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.ComparisonResult
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Calculation.SizeKwp != 50 {
			t.Errorf("Expected 50 kWp, got %f", response.Calculation.SizeKwp)
		}
	})

	t.Run("rejects both sizings at once", func(t *testing.T) {
		handler, _ := setupComparisonHandler(t)

		w := post(t, handler, `{"location":"tunis","sizeKwp":100,"investmentDt":125000}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects missing sizing", func(t *testing.T) {
		handler, _ := setupComparisonHandler(t)

		w := post(t, handler, `{"location":"tunis"}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects unknown locations", func(t *testing.T) {
		handler, _ := setupComparisonHandler(t)

		w := post(t, handler, `{"location":"berlin","sizeKwp":100}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		handler, _ := setupComparisonHandler(t)

		w := post(t, handler, `{"location":"tunis","sizeKw":100}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

// TestComparisonHandler_GetComparison verifies retrieval by ID.
func TestComparisonHandler_GetComparison(t *testing.T) {
	t.Run("returns a stored comparison", func(t *testing.T) {
		handler, db := setupComparisonHandler(t)
		stored := testutil.CreateComparison(t, db, "sousse")

		req := httptest.NewRequest(http.MethodGet, "/api/comparison/"+stored.ID, nil)
		req = withURLParam(req, "uuid", stored.ID)
		w := httptest.NewRecorder()

		handler.GetComparison(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.ComparisonResult
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.ID != stored.ID {
			t.Errorf("Expected ID %s, got %s", stored.ID, response.ID)
		}
	})

	t.Run("returns 404 for an unknown ID", func(t *testing.T) {
		handler, _ := setupComparisonHandler(t)

		missing := testutil.MakeID()
		req := httptest.NewRequest(http.MethodGet, "/api/comparison/"+missing, nil)
		req = withURLParam(req, "uuid", missing)
		w := httptest.NewRecorder()

		handler.GetComparison(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}

// TestComparisonHandler_AllComparisons verifies the listing endpoint.
func TestComparisonHandler_AllComparisons(t *testing.T) {
	handler, db := setupComparisonHandler(t)

	testutil.CreateComparison(t, db, "tunis")
	testutil.CreateComparison(t, db, "gabes")

	t.Run("lists stored comparisons", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/comparison", nil)
		w := httptest.NewRecorder()

		handler.AllComparisons(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.ComparisonResult
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) != 2 {
			t.Errorf("Expected 2 comparisons, got %d", len(response))
		}
	})

	t.Run("rejects a malformed limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/comparison?limit=many", nil)
		w := httptest.NewRecorder()

		handler.AllComparisons(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}
