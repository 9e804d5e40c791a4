package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qnaboard/qna-service/internal/adapters/http/dto"
	"github.com/qnaboard/qna-service/internal/app"
	"github.com/qnaboard/qna-service/internal/domain"
)

// QuestionHandler handles question-related HTTP endpoints.
type QuestionHandler struct {
	service *app.QuestionService
}

// NewQuestionHandler creates a new question handler.
func NewQuestionHandler(service *app.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		service: service,
	}
}

// parseID parses a numeric path parameter. Ids are integers, so a
// non-numeric value can never name a stored entity and maps to the same
// not-found error as an unknown id.
func parseID(c *gin.Context, entity string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		dto.HandleError(c, domain.NewNotFoundError(entity, 0))
		return 0, false
	}

	return id, true
}

// List handles GET /questions
// Returns all questions, newest first, without their answers.
func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := h.service.List(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuestionListResponse(questions))
}

// Create handles POST /questions
// Creates a question from the request text and returns the stored entity.
func (h *QuestionHandler) Create(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	question, err := h.service.Create(c.Request.Context(), req.Text)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToQuestionResponse(question))
}

// GetDetail handles GET /questions/:id
// Returns a question together with all of its answers.
func (h *QuestionHandler) GetDetail(c *gin.Context) {
	id, ok := parseID(c, "Question")
	if !ok {
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuestionDetailResponse(detail))
}

// Delete handles DELETE /questions/:id
// Removes a question and all of its answers.
func (h *QuestionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Question")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterQuestionRoutes registers question routes on the given router group.
func (h *QuestionHandler) RegisterQuestionRoutes(rg *gin.RouterGroup) {
	questions := rg.Group("/questions")
	questions.GET("", h.List)
	questions.POST("", h.Create)
	questions.GET("/:id", h.GetDetail)
	questions.DELETE("/:id", h.Delete)
}
