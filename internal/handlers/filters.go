package handlers

import (
	"net/http"

	"herhub/internal/services"

	"github.com/gin-gonic/gin"
)

type FiltersHandler struct{}

func NewFiltersHandler() *FiltersHandler {
	return &FiltersHandler{}
}

type filterOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// List handles GET /api/filters: the static filter and sort vocabulary the
// client builds its feed controls from.
func (h *FiltersHandler) List(c *gin.Context) {
	filters := []filterOption{
		{Key: services.FilterAll, Label: "All Posts"},
		{Key: services.FilterResources, Label: "Resources"},
		{Key: services.FilterPhotoPosts, Label: "Photo Posts"},
		{Key: services.FilterAdvice, Label: "Advice & Tips"},
		{Key: services.FilterAskForHelp, Label: "Ask for Help"},
	}

	sortOptions := []filterOption{
		{Key: services.SortNewest, Label: "Newest"},
		{Key: services.SortMostPopular, Label: "Most Popular"},
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"filters":     filters,
			"sortOptions": sortOptions,
		},
	})
}
