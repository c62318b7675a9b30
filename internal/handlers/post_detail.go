package handlers

import (
	"errors"
	"net/http"
	"time"

	"herhub/internal/db"
	"herhub/internal/models"
	"herhub/internal/services"
	"herhub/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type authorSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

func newAuthorSummary(u models.User) authorSummary {
	return authorSummary{
		ID:       u.ID,
		Name:     u.FullName,
		Username: u.Username,
		Avatar:   u.Avatar,
	}
}

type commentDetail struct {
	ID        uint          `json:"id"`
	Text      string        `json:"text"`
	Author    authorSummary `json:"author"`
	CreatedAt time.Time     `json:"createdAt"`
}

type pollOptionDetail struct {
	ID         uint   `json:"id"`
	Label      string `json:"label"`
	VotesCount int    `json:"votesCount"`
}

// fillOptionVoteCounts batch-counts poll votes for a post's options.
func fillOptionVoteCounts(options []models.PollOption) error {
	if len(options) == 0 {
		return nil
	}

	optionIDs := make([]uint, len(options))
	for i, o := range options {
		optionIDs[i] = o.ID
	}

	type countResult struct {
		OptionID uint
		Count    int
	}
	var results []countResult
	err := db.DB.Model(&models.PollVote{}).
		Select("option_id, COUNT(*) as count").
		Where("option_id IN ?", optionIDs).
		Group("option_id").
		Scan(&results).Error
	if err != nil {
		return err
	}

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.OptionID] = r.Count
	}

	for i := range options {
		options[i].VotesCount = countMap[options[i].ID]
	}
	return nil
}

// Detail handles GET /api/posts/:id: the full detail record with author,
// comments (newest first), poll options and the requester's liked/saved
// state.
func (h *PostHandler) Detail(c *gin.Context) {
	userID := currentUserID(c)
	pid := c.Param("id")

	var post models.Post
	err := db.DB.Preload("User").
		Preload("PollOptions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Where("pid = ?", pid).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			JSONError(c, http.StatusNotFound, "Post not found")
			return
		}
		JSONInternal(c, "Error loading post", err)
		return
	}

	if err := fillOptionVoteCounts(post.PollOptions); err != nil {
		JSONInternal(c, "Error counting poll votes", err)
		return
	}

	var comments []models.Comment
	if err := db.DB.Preload("User").
		Where("post_id = ?", post.ID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		JSONInternal(c, "Error loading comments", err)
		return
	}

	// A missing row means "not liked"; anything else is a store failure.
	var liked bool
	var likeRow models.Like
	switch err := db.DB.Where("user_id = ? AND post_id = ?", userID, post.ID).First(&likeRow).Error; {
	case err == nil:
		liked = true
	case !errors.Is(err, gorm.ErrRecordNotFound):
		JSONInternal(c, "Error loading like state", err)
		return
	}

	var saved bool
	var savedRow models.SavedPost
	switch err := db.DB.Where("user_id = ? AND post_id = ?", userID, post.ID).First(&savedRow).Error; {
	case err == nil:
		saved = true
	case !errors.Is(err, gorm.ErrRecordNotFound):
		JSONInternal(c, "Error loading save state", err)
		return
	}

	commentList := make([]commentDetail, len(comments))
	for i, com := range comments {
		commentList[i] = commentDetail{
			ID:        com.ID,
			Text:      com.Text,
			Author:    newAuthorSummary(com.User),
			CreatedAt: com.CreatedAt,
		}
	}

	optionList := make([]pollOptionDetail, len(post.PollOptions))
	for i, o := range post.PollOptions {
		optionList[i] = pollOptionDetail{
			ID:         o.ID,
			Label:      o.Label,
			VotesCount: o.VotesCount,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":            post.Pid,
			"author":        newAuthorSummary(post.User),
			"type":          post.Type,
			"text":          post.Text,
			"imageUrl":      post.ImageURL,
			"question":      post.Question,
			"pollOptions":   optionList,
			"likesCount":    post.LikesCount,
			"commentsCount": post.CommentsCount,
			"liked":         liked,
			"saved":         saved,
			"createdAt":     post.CreatedAt,
			"comments":      commentList,
		},
	})
}

// CreateComment handles POST /api/posts/:id/comments. The comment and the
// cached comment count move together in one transaction.
func (h *PostHandler) CreateComment(c *gin.Context) {
	userID := currentUserID(c)
	pid := c.Param("id")

	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "Text is required")
		return
	}
	text := utils.CleanText(req.Text)
	if text == "" {
		JSONError(c, http.StatusBadRequest, "Text is required")
		return
	}

	var post models.Post
	if err := db.DB.Where("pid = ?", pid).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			JSONError(c, http.StatusNotFound, "Post not found")
			return
		}
		JSONInternal(c, "Error loading post", err)
		return
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			JSONError(c, http.StatusNotFound, "User not found")
			return
		}
		JSONInternal(c, "Error loading user", err)
		return
	}

	comment := models.Comment{
		PostID: post.ID,
		UserID: userID,
		Text:   text,
	}
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).Where("id = ?", post.ID).
			UpdateColumn("comments_count", gorm.Expr("comments_count + 1")).Error
	})
	if err != nil {
		JSONInternal(c, "Error creating comment", err)
		return
	}

	services.GetRecountService().Schedule(post.ID)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": commentDetail{
			ID:        comment.ID,
			Text:      comment.Text,
			Author:    newAuthorSummary(user),
			CreatedAt: comment.CreatedAt,
		},
	})
}
