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

// Vote handles POST /api/posts/:id/vote, toggling the requester's vote on
// one option of a poll post. Vote counts are derived from the voter rows,
// so no cached counter moves here.
func (h *PostHandler) Vote(c *gin.Context) {
	userID := currentUserID(c)

	var req struct {
		OptionID uint `json:"optionId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.OptionID == 0 {
		JSONError(c, http.StatusBadRequest, "optionId is required")
		return
	}

	post, ok := h.loadPostAndUser(c, c.Param("id"), userID)
	if !ok {
		return
	}
	if post.Type != models.PostTypePoll {
		JSONError(c, http.StatusBadRequest, "Post is not a poll")
		return
	}

	var option models.PollOption
	if err := db.DB.Where("id = ? AND post_id = ?", req.OptionID, post.ID).First(&option).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			JSONError(c, http.StatusNotFound, "Poll option not found")
			return
		}
		JSONInternal(c, "Error loading poll option", err)
		return
	}

	var step services.ToggleResult
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("option_id = ? AND user_id = ?", option.ID, userID).Delete(&models.PollVote{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			step = services.MembershipToggle(true, false)
			return nil
		}

		vote := models.PollVote{OptionID: option.ID, UserID: userID}
		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&vote)
		if ins.Error != nil {
			return ins.Error
		}
		step = services.MembershipToggle(false, ins.RowsAffected > 0)
		return nil
	})
	if err != nil {
		JSONInternal(c, "Error toggling vote", err)
		return
	}

	var votesCount int64
	if err := db.DB.Model(&models.PollVote{}).Where("option_id = ?", option.ID).Count(&votesCount).Error; err != nil {
		JSONInternal(c, "Error counting votes", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"postId":     post.Pid,
			"optionId":   option.ID,
			"votesCount": votesCount,
			"voted":      step.Member,
		},
	})
}
