package handlers

import (
	"errors"
	"net/http"

	"herhub/internal/db"
	"herhub/internal/models"
	"herhub/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (h *PostHandler) loadPostAndUser(c *gin.Context, pid string, userID uint) (*models.Post, bool) {
	var post models.Post
	if err := db.DB.Where("pid = ?", pid).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			JSONError(c, http.StatusNotFound, "Post not found")
			return nil, false
		}
		JSONInternal(c, "Error loading post", err)
		return nil, false
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			JSONError(c, http.StatusNotFound, "User not found")
			return nil, false
		}
		JSONInternal(c, "Error loading user", err)
		return nil, false
	}

	return &post, true
}

// Like handles POST /api/posts/:id/like. The toggle runs as a conditional
// delete-or-insert inside one transaction; the unique (user_id, post_id)
// index means two concurrent toggles cannot double-count, and the cached
// likes_count moves only when a row actually changed.
func (h *PostHandler) Like(c *gin.Context) {
	userID := currentUserID(c)

	post, ok := h.loadPostAndUser(c, c.Param("id"), userID)
	if !ok {
		return
	}

	var step services.ToggleResult
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, post.ID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			step = services.MembershipToggle(true, false)
		} else {
			like := models.Like{UserID: userID, PostID: post.ID}
			ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
			if ins.Error != nil {
				return ins.Error
			}
			step = services.MembershipToggle(false, ins.RowsAffected > 0)
		}

		if step.CountDelta == 0 {
			return nil
		}
		return tx.Model(&models.Post{}).Where("id = ?", post.ID).
			UpdateColumn("likes_count", services.CounterExpr("likes_count", step.CountDelta)).Error
	})
	if err != nil {
		JSONInternal(c, "Error toggling like", err)
		return
	}

	services.GetRecountService().Schedule(post.ID)

	// Report the actual set size rather than the cached column.
	var likesCount int64
	if err := db.DB.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&likesCount).Error; err != nil {
		JSONInternal(c, "Error counting likes", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"postId":     post.Pid,
			"likesCount": likesCount,
			"liked":      step.Member,
		},
	})
}

// Save handles POST /api/posts/:id/save, the bookmark toggle. Symmetric to
// Like but mutates the user-side saved set; no cached counter is involved.
func (h *PostHandler) Save(c *gin.Context) {
	userID := currentUserID(c)

	post, ok := h.loadPostAndUser(c, c.Param("id"), userID)
	if !ok {
		return
	}

	var step services.ToggleResult
	res := db.DB.Where("user_id = ? AND post_id = ?", userID, post.ID).Delete(&models.SavedPost{})
	if res.Error != nil {
		JSONInternal(c, "Error toggling save", res.Error)
		return
	}

	if res.RowsAffected > 0 {
		step = services.MembershipToggle(true, false)
	} else {
		record := models.SavedPost{UserID: userID, PostID: post.ID}
		ins := db.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&record)
		if ins.Error != nil {
			JSONInternal(c, "Error toggling save", ins.Error)
			return
		}
		step = services.MembershipToggle(false, ins.RowsAffected > 0)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"postId": post.Pid,
			"saved":  step.Member,
		},
	})
}
