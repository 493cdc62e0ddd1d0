package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/AliJone/Gaza/internal/service"
	"github.com/AliJone/Gaza/internal/utils"
)

// SubmissionHandler handles the public submission endpoint.
type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

// NewSubmissionHandler constructs a SubmissionHandler.
func NewSubmissionHandler(submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// SubmitEntry accepts a new entry submission (JSON or form body) and
// stores it for review. The created entry's id is deliberately not
// returned; the caller only gets a confirmation message.
func (h *SubmissionHandler) SubmitEntry(c *gin.Context) {
	var input service.SubmissionInput
	if err := c.ShouldBind(&input); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if _, err := h.submissionService.Submit(input); err != nil {
		if errors.Is(err, utils.ErrMissingRequiredField) {
			utils.Error(c, 400, "MISSING_REQUIRED_FIELD", "Required fields are missing")
			return
		}
		utils.Error(c, 503, "STORE_UNAVAILABLE", "Failed to store submission")
		return
	}

	utils.Success(c, 201, "Product added successfully and is under review.", nil)
}
