package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qnaboard/qna-service/internal/adapters/http/dto"
	"github.com/qnaboard/qna-service/internal/app"
)

// AnswerHandler handles answer-related HTTP endpoints.
type AnswerHandler struct {
	service *app.AnswerService
}

// NewAnswerHandler creates a new answer handler.
func NewAnswerHandler(service *app.AnswerService) *AnswerHandler {
	return &AnswerHandler{
		service: service,
	}
}

// Create handles POST /answers/:id/answers
// The path id names the question being answered. Payload shape errors
// are client input errors regardless of whether the question exists;
// the service rejects unknown questions before validating the text.
func (h *AnswerHandler) Create(c *gin.Context) {
	questionID, ok := parseID(c, "Question")
	if !ok {
		return
	}

	var req dto.CreateAnswerRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	answer, err := h.service.Create(c.Request.Context(), questionID, *req.UserID, *req.Text)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAnswerResponse(answer))
}

// Get handles GET /answers/:id
// Returns a single answer by id.
func (h *AnswerHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Answer")
	if !ok {
		return
	}

	answer, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAnswerResponse(answer))
}

// Delete handles DELETE /answers/:id
// Removes a single answer; its question is untouched.
func (h *AnswerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Answer")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterAnswerRoutes registers answer routes on the given router group.
func (h *AnswerHandler) RegisterAnswerRoutes(rg *gin.RouterGroup) {
	answers := rg.Group("/answers")
	answers.POST("/:id/answers", h.Create)
	answers.GET("/:id", h.Get)
	answers.DELETE("/:id", h.Delete)
}
