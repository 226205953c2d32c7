package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/luo-one/organizer/internal/services"
)

// EmailAccountHandler handles email account pages and actions
type EmailAccountHandler struct {
	emailService *services.EmailAccountService
}

// NewEmailAccountHandler creates a new EmailAccountHandler instance
func NewEmailAccountHandler(emailService *services.EmailAccountService) *EmailAccountHandler {
	return &EmailAccountHandler{emailService: emailService}
}

// CreateEmailAccountForm is the form posted by the add-email modal
type CreateEmailAccountForm struct {
	Email   string `form:"email"`
	Purpose string `form:"purpose"`
}

// ListEmailAccounts renders every account with its website count
// GET /emails
func (h *EmailAccountHandler) ListEmailAccounts(c *gin.Context) {
	emails, err := h.emailService.ListSummaries(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "emails.html", gin.H{
		"title":  "Email Accounts",
		"active": "emails",
		"emails": emails,
	})
}

// CreateEmailAccount stores a new account and returns to the list
// POST /add_email
func (h *EmailAccountHandler) CreateEmailAccount(c *gin.Context) {
	var form CreateEmailAccountForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "Invalid form data")
		return
	}

	_, err := h.emailService.Create(c.Request.Context(), services.CreateEmailAccountInput{
		Email:   form.Email,
		Purpose: form.Purpose,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create email account")
		return
	}

	c.Redirect(http.StatusFound, "/emails")
}

// DeleteEmailAccount removes an account together with its websites and submissions
// POST /delete_email/:id
func (h *EmailAccountHandler) DeleteEmailAccount(c *gin.Context) {
	id, ok := parseID(c, "id", "email account")
	if !ok {
		return
	}

	if err := h.emailService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Failed to delete email account")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
