package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestFiltersList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/filters", NewFiltersHandler().List)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/filters", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Filters     []filterOption `json:"filters"`
			SortOptions []filterOption `json:"sortOptions"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if !resp.Success {
		t.Error("expected success=true")
	}
	if len(resp.Data.Filters) != 5 {
		t.Errorf("expected 5 filters, got %d", len(resp.Data.Filters))
	}
	if resp.Data.Filters[0].Key != "All" {
		t.Errorf("first filter key = %q, want All", resp.Data.Filters[0].Key)
	}
	if len(resp.Data.SortOptions) != 2 {
		t.Errorf("expected 2 sort options, got %d", len(resp.Data.SortOptions))
	}
}
