package services

import (
	"math"
	"time"

	"herhub/internal/db"
	"herhub/internal/models"
)

// Feed filter labels and sort keys accepted by the feed endpoints. These are
// the strings the mobile client sends, not the stored type tags.
const (
	FilterAll        = "All"
	FilterResources  = "Resources"
	FilterPhotoPosts = "Photo Posts"
	FilterAdvice     = "Advice"
	FilterAskForHelp = "Ask for Help"

	SortNewest      = "newest"
	SortMostPopular = "most_popular"
)

// FilterTypeTag maps a feed filter label to the post type tag it restricts
// to. Empty string means no restriction. "Resources" maps to a tag no
// creation handler produces; the mapping is part of the client contract and
// is kept as-is.
func FilterTypeTag(filter string) string {
	switch filter {
	case FilterResources:
		return "resource"
	case FilterPhotoPosts:
		return models.PostTypeImage
	case FilterAdvice:
		return models.PostTypeTip
	case FilterAskForHelp:
		return models.PostTypeChat
	default:
		return ""
	}
}

// FilterLabelForTag is the reverse of FilterTypeTag, used to invalidate the
// cached feed pages a freshly created post belongs to.
func FilterLabelForTag(tag string) string {
	switch tag {
	case "resource":
		return FilterResources
	case models.PostTypeImage:
		return FilterPhotoPosts
	case models.PostTypeTip:
		return FilterAdvice
	case models.PostTypeChat:
		return FilterAskForHelp
	default:
		return ""
	}
}

// OrderClause maps a sort key to the store order clause. An unrecognized key
// yields no ordering at all; that fallback is tolerated, not an error.
func OrderClause(sort string) string {
	switch sort {
	case SortNewest:
		return "created_at DESC"
	case SortMostPopular:
		return "likes_count DESC"
	default:
		return ""
	}
}

// Pagination describes one window of the feed.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	HasMore     bool  `json:"hasMore"`
}

// Paginate normalizes page and limit (non-positive values fall back to the
// defaults) and derives the skip offset and page counters from the total.
func Paginate(page, limit int, total int64) (int, Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	skip := (page - 1) * limit
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return skip, Pagination{
		CurrentPage: page,
		Limit:       limit,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasMore:     page < totalPages,
	}
}

// PostSummary is the trimmed post representation returned by feed listing.
type PostSummary struct {
	ID            string    `json:"id"`
	Author        string    `json:"author"`
	AuthorAvatar  *string   `json:"authorAvatar"`
	Text          string    `json:"text"`
	ImageURL      *string   `json:"imageUrl"`
	Type          string    `json:"type"`
	LikesCount    int       `json:"likesCount"`
	CommentsCount int       `json:"commentsCount"`
	CreatedAt     time.Time `json:"createdAt"`
	IsLiked       bool      `json:"isLiked"`
	IsSaved       bool      `json:"isSaved"`
}

// FeedPage is the user-independent part of a feed response. It is what gets
// cached and shared between requesters; per-user like/save flags are joined
// in afterwards.
type FeedPage struct {
	Posts      []models.Post
	Pagination Pagination
}

// FetchFeedPage runs the filter, count and windowed fetch for one feed page,
// with the author preloaded on every post.
func FetchFeedPage(filter, sort string, page, limit int) (*FeedPage, error) {
	typeTag := FilterTypeTag(filter)

	countQuery := db.DB.Model(&models.Post{})
	if typeTag != "" {
		countQuery = countQuery.Where("type = ?", typeTag)
	}
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	skip, pagination := Paginate(page, limit, total)

	query := db.DB.Preload("User")
	if typeTag != "" {
		query = query.Where("type = ?", typeTag)
	}
	if order := OrderClause(sort); order != "" {
		query = query.Order(order)
	}

	var posts []models.Post
	if err := query.Limit(pagination.Limit).Offset(skip).Find(&posts).Error; err != nil {
		return nil, err
	}

	return &FeedPage{Posts: posts, Pagination: pagination}, nil
}

// FetchSince returns posts created strictly after the given instant, for the
// pull-to-refresh endpoint. No pagination, just a limit.
func FetchSince(since time.Time, filter, sort string, limit int) ([]models.Post, error) {
	if limit < 1 {
		limit = 10
	}

	query := db.DB.Preload("User").Where("created_at > ?", since)
	if typeTag := FilterTypeTag(filter); typeTag != "" {
		query = query.Where("type = ?", typeTag)
	}
	if order := OrderClause(sort); order != "" {
		query = query.Order(order)
	}

	var posts []models.Post
	if err := query.Limit(limit).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// LikedSavedSets returns the requesting user's liked and saved sets,
// restricted to the given posts. A user with no rows (including one that no
// longer exists) simply yields empty sets, so every flag comes back false;
// a failing store query is an error, not an empty set.
func LikedSavedSets(userID uint, postIDs []uint) (liked, saved map[uint]bool, err error) {
	liked = make(map[uint]bool)
	saved = make(map[uint]bool)
	if userID == 0 || len(postIDs) == 0 {
		return liked, saved, nil
	}

	var likes []models.Like
	if err := db.DB.Where("user_id = ? AND post_id IN ?", userID, postIDs).Find(&likes).Error; err != nil {
		return nil, nil, err
	}
	for _, l := range likes {
		liked[l.PostID] = true
	}

	var savedRows []models.SavedPost
	if err := db.DB.Where("user_id = ? AND post_id IN ?", userID, postIDs).Find(&savedRows).Error; err != nil {
		return nil, nil, err
	}
	for _, s := range savedRows {
		saved[s.PostID] = true
	}
	return liked, saved, nil
}

// AssembleFeed joins a page of posts against the requester's liked/saved
// sets and shapes the external summary records. Read-only.
func AssembleFeed(posts []models.Post, liked, saved map[uint]bool) []PostSummary {
	summaries := make([]PostSummary, 0, len(posts))
	for _, p := range posts {
		var avatar *string
		if p.User.Avatar != "" {
			a := p.User.Avatar
			avatar = &a
		}
		var imageURL *string
		if p.ImageURL != "" {
			u := p.ImageURL
			imageURL = &u
		}
		summaries = append(summaries, PostSummary{
			ID:            p.Pid,
			Author:        p.User.Username,
			AuthorAvatar:  avatar,
			Text:          p.Text,
			ImageURL:      imageURL,
			Type:          p.Type,
			LikesCount:    p.LikesCount,
			CommentsCount: p.CommentsCount,
			CreatedAt:     p.CreatedAt,
			IsLiked:       liked[p.ID],
			IsSaved:       saved[p.ID],
		})
	}
	return summaries
}

// PostIDs collects the internal ids of a post page for the membership lookups.
func PostIDs(posts []models.Post) []uint {
	ids := make([]uint, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}
