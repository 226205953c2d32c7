package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/luo-one/organizer/internal/services"
)

// WebsiteHandler handles the per-account website pages and actions
type WebsiteHandler struct {
	websiteService *services.WebsiteService
}

// NewWebsiteHandler creates a new WebsiteHandler instance
func NewWebsiteHandler(websiteService *services.WebsiteService) *WebsiteHandler {
	return &WebsiteHandler{websiteService: websiteService}
}

// CreateWebsiteForm is the form posted by the add-website modal
type CreateWebsiteForm struct {
	Name     string `form:"name"`
	URL      string `form:"url"`
	Username string `form:"username"`
	EmailID  string `form:"email_id"`
}

// ListWebsites renders the websites registered with one account
// GET /websites/:email_id
func (h *WebsiteHandler) ListWebsites(c *gin.Context) {
	emailID, err := strconv.ParseUint(c.Param("email_id"), 10, 32)
	if err != nil {
		renderError(c, services.ErrEmailAccountNotFound)
		return
	}

	account, websites, err := h.websiteService.ListByEmailID(c.Request.Context(), uint(emailID))
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "websites.html", gin.H{
		"title":    "Websites for " + account.Email,
		"active":   "emails",
		"email":    account,
		"websites": websites,
	})
}

// CreateWebsite stores a website and returns to its account's page
// POST /add_website
func (h *WebsiteHandler) CreateWebsite(c *gin.Context) {
	var form CreateWebsiteForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "Invalid form data")
		return
	}

	emailID, err := parseFormID(form.EmailID, "email_id")
	if err != nil {
		respondServiceError(c, err, "Failed to create website")
		return
	}

	website, err := h.websiteService.Create(c.Request.Context(), services.CreateWebsiteInput{
		Name:     form.Name,
		URL:      form.URL,
		Username: form.Username,
		EmailID:  emailID,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create website")
		return
	}

	c.Redirect(http.StatusFound, "/websites/"+strconv.FormatUint(uint64(website.EmailID), 10))
}

// DeleteWebsite removes a website and its submissions
// POST /delete_website/:id
func (h *WebsiteHandler) DeleteWebsite(c *gin.Context) {
	id, ok := parseID(c, "id", "website")
	if !ok {
		return
	}

	website, err := h.websiteService.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to delete website")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"email_id": website.EmailID,
	})
}
