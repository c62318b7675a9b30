package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"herhub/internal/db"
	"herhub/internal/models"
	"herhub/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct {
	mailService *services.MailService
}

func NewUserHandler() *UserHandler {
	return &UserHandler{
		mailService: services.NewMailService(),
	}
}

// CheckUsername handles GET /api/user/check-username/:username.
func (h *UserHandler) CheckUsername(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	err := db.DB.Where("username = ?", username).First(&user).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"available": false})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		JSONInternal(c, "Error checking username", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": true})
}

// SendEmailCode handles POST /api/user/send-email: issue a verification code
// and mail it. Delivery is fire-and-forget.
func (h *UserHandler) SendEmailCode(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		JSONError(c, http.StatusBadRequest, "Email is required")
		return
	}

	code, err := services.IssueCode(models.VerificationChannelEmail, req.Email)
	if err != nil {
		JSONInternal(c, "Error issuing email code", err)
		return
	}

	h.mailService.SendVerificationEmail(req.Email, code)
	c.JSON(http.StatusOK, gin.H{"message": "Email sent"})
}

// VerifyEmailCode handles POST /api/user/verify-email.
func (h *UserHandler) VerifyEmailCode(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Code == "" {
		JSONError(c, http.StatusBadRequest, "Email and code are required")
		return
	}

	ok, err := services.ConsumeCode(models.VerificationChannelEmail, req.Email, req.Code)
	if err != nil {
		JSONInternal(c, "Error verifying email code", err)
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"verified": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"verified": true})
}

// SendPhoneCode handles POST /api/user/send-phone.
// TODO: integrate an SMS provider; until then the OTP is stored but never
// delivered anywhere.
func (h *UserHandler) SendPhoneCode(c *gin.Context) {
	var req struct {
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Phone == "" {
		JSONError(c, http.StatusBadRequest, "Phone is required")
		return
	}

	if _, err := services.IssueCode(models.VerificationChannelPhone, req.Phone); err != nil {
		JSONInternal(c, "Error issuing phone code", err)
		return
	}

	log.Printf("OTP issued for phone %s", req.Phone)
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
}

// VerifyPhoneCode handles POST /api/user/verify-phone.
func (h *UserHandler) VerifyPhoneCode(c *gin.Context) {
	var req struct {
		Phone string `json:"phone"`
		OTP   string `json:"otp"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Phone == "" || req.OTP == "" {
		JSONError(c, http.StatusBadRequest, "Phone and otp are required")
		return
	}

	ok, err := services.ConsumeCode(models.VerificationChannelPhone, req.Phone, req.OTP)
	if err != nil {
		JSONInternal(c, "Error verifying phone code", err)
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"verified": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"verified": true})
}

// CompleteSignup handles POST /api/user/complete-signup: creates the user
// record and hands back a bearer token for the new account.
func (h *UserHandler) CompleteSignup(c *gin.Context) {
	var req struct {
		FullName     string `json:"fullName"`
		Username     string `json:"username"`
		Email        string `json:"email"`
		Phone        string `json:"phone"`
		BusinessName string `json:"businessName"`
		DateOfBirth  string `json:"dateOfBirth"`
		ReferralCode string `json:"referralCode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "Invalid signup payload")
		return
	}
	if req.FullName == "" || req.Username == "" || req.Email == "" || req.Phone == "" || req.DateOfBirth == "" {
		JSONError(c, http.StatusBadRequest, "fullName, username, email, phone and dateOfBirth are required")
		return
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		dob, err = time.Parse(time.RFC3339, req.DateOfBirth)
	}
	if err != nil {
		JSONError(c, http.StatusBadRequest, "Invalid dateOfBirth")
		return
	}

	user := models.User{
		FullName:     req.FullName,
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		BusinessName: req.BusinessName,
		DateOfBirth:  dob,
		ReferralCode: req.ReferralCode,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			JSONError(c, http.StatusConflict, "Username or email already taken")
			return
		}
		JSONInternal(c, "Error saving user", err)
		return
	}

	token, err := services.IssueToken(user.ID)
	if err != nil {
		JSONInternal(c, "Error issuing token", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
		"token":   token,
	})
}
