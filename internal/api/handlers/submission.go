package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/luo-one/organizer/internal/services"
)

// SubmissionHandler handles submission deadlines
type SubmissionHandler struct {
	submissionService *services.SubmissionService
	websiteService    *services.WebsiteService
}

// NewSubmissionHandler creates a new SubmissionHandler instance
func NewSubmissionHandler(submissionService *services.SubmissionService, websiteService *services.WebsiteService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		websiteService:    websiteService,
	}
}

// CreateSubmissionForm is the form posted by the add-submission modal
type CreateSubmissionForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	DueDate     string `form:"due_date"`
	WebsiteID   string `form:"website_id"`
}

// ListSubmissions renders every submission by due date, plus the websites
// offered by the add form
// GET /submissions
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	ctx := c.Request.Context()

	submissions, err := h.submissionService.List(ctx, services.SubmissionFilterAll)
	if err != nil {
		renderError(c, err)
		return
	}
	websites, err := h.websiteService.List(ctx)
	if err != nil {
		renderError(c, err)
		return
	}

	websiteNames := make(map[uint]string, len(websites))
	for _, w := range websites {
		websiteNames[w.ID] = w.Name
	}

	c.HTML(http.StatusOK, "submissions.html", gin.H{
		"title":        "Submissions",
		"active":       "submissions",
		"submissions":  submissions,
		"websites":     websites,
		"websiteNames": websiteNames,
		"now":          h.submissionService.Now(),
	})
}

// CreateSubmission stores a pending submission
// POST /add_submission
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var form CreateSubmissionForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "Invalid form data")
		return
	}

	websiteID, err := parseFormID(form.WebsiteID, "website_id")
	if err != nil {
		respondServiceError(c, err, "Failed to create submission")
		return
	}

	_, err = h.submissionService.Create(c.Request.Context(), services.CreateSubmissionInput{
		Title:       form.Title,
		Description: form.Description,
		DueDate:     form.DueDate,
		WebsiteID:   websiteID,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create submission")
		return
	}

	c.Redirect(http.StatusFound, "/submissions")
}

// UpdateSubmissionStatus sets the status of one submission
// POST /update_submission_status/:id
func (h *SubmissionHandler) UpdateSubmissionStatus(c *gin.Context) {
	id, ok := parseID(c, "id", "submission")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "Invalid request body")
		return
	}

	if err := h.submissionService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		respondServiceError(c, err, "Failed to update submission")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteSubmission removes one submission
// POST /delete_submission/:id
func (h *SubmissionHandler) DeleteSubmission(c *gin.Context) {
	id, ok := parseID(c, "id", "submission")
	if !ok {
		return
	}

	if err := h.submissionService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Failed to delete submission")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
