package handlers

import (
	"fmt"
	"net/http"
	"time"

	"herhub/internal/services"
	"herhub/internal/utils"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct{}

func NewFeedHandler() *FeedHandler {
	return &FeedHandler{}
}

// feedCacheKey identifies the shared (user-independent) part of a feed page.
func feedCacheKey(filter, sort string, page, limit int) string {
	return fmt.Sprintf("feed:%s:%s:%d:%d", filter, sort, page, limit)
}

// List handles GET /api/feed. The post page and pagination are shared across
// requesters and cached briefly; the per-user isLiked/isSaved flags are
// joined in on every request.
func (h *FeedHandler) List(c *gin.Context) {
	userID := currentUserID(c)

	filter := c.DefaultQuery("filter", services.FilterAll)
	sort := c.DefaultQuery("sort", services.SortNewest)
	page := utils.StringToInt(c.DefaultQuery("page", "1"))
	limit := utils.StringToInt(c.DefaultQuery("limit", "10"))

	cacheKey := feedCacheKey(filter, sort, page, limit)
	var feedPage *services.FeedPage
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if cachedPage, ok := cached.(*services.FeedPage); ok {
			feedPage = cachedPage
		}
	}

	if feedPage == nil {
		fetched, err := services.FetchFeedPage(filter, sort, page, limit)
		if err != nil {
			JSONInternal(c, "Error fetching feed", err)
			return
		}
		feedPage = fetched
		utils.GetCache().Set(cacheKey, feedPage, 1*time.Minute)
	}

	liked, saved, err := services.LikedSavedSets(userID, services.PostIDs(feedPage.Posts))
	if err != nil {
		JSONInternal(c, "Error loading feed state", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       services.AssembleFeed(feedPage.Posts, liked, saved),
		"pagination": feedPage.Pagination,
	})
}

// Refresh handles GET /api/feed/refresh: posts created strictly after the
// `since` timestamp, for pull-to-refresh. No pagination.
func (h *FeedHandler) Refresh(c *gin.Context) {
	userID := currentUserID(c)

	sinceParam := c.Query("since")
	if sinceParam == "" {
		JSONError(c, http.StatusBadRequest, "since timestamp is required")
		return
	}
	since, err := time.Parse(time.RFC3339, sinceParam)
	if err != nil {
		JSONError(c, http.StatusBadRequest, "Invalid since timestamp")
		return
	}

	filter := c.DefaultQuery("filter", services.FilterAll)
	sort := c.DefaultQuery("sort", services.SortNewest)
	limit := utils.StringToInt(c.DefaultQuery("limit", "10"))

	posts, err := services.FetchSince(since, filter, sort, limit)
	if err != nil {
		JSONInternal(c, "Error refreshing feed", err)
		return
	}

	liked, saved, err := services.LikedSavedSets(userID, services.PostIDs(posts))
	if err != nil {
		JSONInternal(c, "Error loading feed state", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    services.AssembleFeed(posts, liked, saved),
	})
}
