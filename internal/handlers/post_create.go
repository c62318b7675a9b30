package handlers

import (
	"net/http"

	"herhub/internal/db"
	"herhub/internal/models"
	"herhub/internal/services"
	"herhub/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// invalidateFeedCache drops the default first feed page for the filters the
// new post shows up under. Other cached combinations age out on their TTL.
func invalidateFeedCache(typeTag string) {
	for _, sort := range []string{services.SortNewest, services.SortMostPopular} {
		utils.GetCache().Delete(feedCacheKey(services.FilterAll, sort, 1, 10))
		if label := services.FilterLabelForTag(typeTag); label != "" {
			utils.GetCache().Delete(feedCacheKey(label, sort, 1, 10))
		}
	}
}

func (h *PostHandler) create(c *gin.Context, post *models.Post) bool {
	post.Pid = utils.RandString(8)
	post.UserID = currentUserID(c)

	if err := db.DB.Create(post).Error; err != nil {
		JSONInternal(c, "Error creating post", err)
		return false
	}

	invalidateFeedCache(post.Type)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": post})
	return true
}

// CreatePhoto handles POST /api/posts/photo (multipart). The image is
// required; the caption is not.
func (h *PostHandler) CreatePhoto(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		JSONError(c, http.StatusBadRequest, "Image is required")
		return
	}
	defer file.Close()

	if err := services.ValidateImage(header); err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	imageURL, err := services.StoreImage(file, header)
	if err != nil {
		JSONInternal(c, "Error storing image", err)
		return
	}

	ok := h.create(c, &models.Post{
		Type:     models.PostTypeImage,
		Text:     utils.CleanText(c.PostForm("caption")),
		ImageURL: imageURL,
	})
	if !ok {
		// The post never made it to the store; don't orphan the file.
		services.RemoveImage(imageURL)
	}
}

// CreateTip handles POST /api/posts/tip.
func (h *PostHandler) CreateTip(c *gin.Context) {
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

	h.create(c, &models.Post{
		Type: models.PostTypeTip,
		Text: text,
	})
}

// CreateHelp handles POST /api/posts/help. Help posts carry the "chat" tag.
func (h *PostHandler) CreateHelp(c *gin.Context) {
	var req struct {
		Question string `json:"question"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "Question is required")
		return
	}

	question := utils.CleanText(req.Question)
	if question == "" {
		JSONError(c, http.StatusBadRequest, "Question is required")
		return
	}

	h.create(c, &models.Post{
		Type:     models.PostTypeChat,
		Question: question,
	})
}

// CreatePoll handles POST /api/posts/poll. A poll needs a question and at
// least two option labels; options start with empty voter sets.
func (h *PostHandler) CreatePoll(c *gin.Context) {
	var req struct {
		Question string   `json:"question"`
		Options  []string `json:"options"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "Question and at least two options are required")
		return
	}

	question := utils.CleanText(req.Question)
	options := make([]models.PollOption, 0, len(req.Options))
	for _, label := range req.Options {
		if cleaned := utils.CleanText(label); cleaned != "" {
			options = append(options, models.PollOption{
				Position: len(options),
				Label:    cleaned,
			})
		}
	}

	if question == "" || len(options) < 2 {
		JSONError(c, http.StatusBadRequest, "Question and at least two options are required")
		return
	}

	h.create(c, &models.Post{
		Type:        models.PostTypePoll,
		Question:    question,
		PollOptions: options,
	})
}
