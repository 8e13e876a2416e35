package handler

import (
	"strings"

	"mcq-quiz/internal/domain"
	"mcq-quiz/internal/dto"
	"mcq-quiz/internal/middleware"
	"mcq-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	noQuestionsMessage = "No questions available for this selection."
	answerFieldPrefix  = "q_"
)

type QuizHandler struct {
	quizService service.QuizService
}

func NewQuizHandler(quizService service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// GetQuiz returns the questions to answer, without their correct options.
// @Summary Start a quiz
// @Description Selects questions of a subject and level. mode=new skips questions already answered.
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param subject query string true "Subject"
// @Param level query string true "Level"
// @Param limit query int false "Maximum number of questions, 0 for all" default(10)
// @Param mode query string false "new or all" default(new)
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /quiz [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	req, ok := c.Locals(middleware.ValidatedSelectionKey).(domain.SelectionRequest)
	if !ok {
		return domain.NewInternalError("quiz request was not validated", nil)
	}
	req.UserID = userIDFromContext(c)

	questions, err := h.quizService.SelectQuestions(c.UserContext(), req)
	if err != nil {
		return err
	}

	resp := dto.QuizResponse{
		Subject:   req.Subject,
		Level:     req.Level,
		Mode:      string(req.Mode),
		Questions: make([]dto.QuestionResponse, 0, len(questions)),
	}
	if len(questions) == 0 {
		resp.Message = noQuestionsMessage
		resp.Redirect = "/"
		return c.JSON(resp)
	}

	ids := make([]string, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
		resp.Questions = append(resp.Questions, dto.ToQuestionResponse(q))
	}
	resp.QuestionIDs = strings.Join(ids, ",")
	return c.JSON(resp)
}

// SubmitQuiz grades the answers and stores the attempt.
// @Summary Submit a quiz
// @Description Form posts send one q_<question id> field per answer; JSON posts send an answers map.
// @Tags quiz
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.SubmitRequest true "Answers"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid submission"
// @Failure 401 {object} middleware.ErrorResponse
// @Router /quiz [post]
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	var req dto.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	sub := domain.Submission{
		UserID:      userIDFromContext(c),
		Subject:     req.Subject,
		Level:       req.Level,
		QuestionIDs: domain.SplitQuestionIDs(req.QuestionIDs),
		Chosen:      make(map[string]string),
	}
	for key, value := range req.Answers {
		sub.Chosen[strings.TrimPrefix(strings.TrimSpace(key), answerFieldPrefix)] = value
	}
	for _, id := range sub.CleanQuestionIDs() {
		if _, ok := sub.Chosen[id]; ok {
			continue
		}
		if value := c.FormValue(answerFieldPrefix + id); value != "" {
			sub.Chosen[id] = value
		}
	}

	result, err := h.quizService.SubmitAttempt(c.UserContext(), sub)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToResultResponse(result))
}

func userIDFromContext(c *fiber.Ctx) string {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	return userID
}
