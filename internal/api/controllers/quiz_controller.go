package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"cougcuts/internal/engine"
	"cougcuts/internal/models/request_models"
	"cougcuts/internal/services"
	"cougcuts/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

// GetQuestions godoc
// @Summary List quiz questions
// @Description Returns the questions that apply to a hair type, given the answers so far
// @Tags Quiz
// @Produce json
// @Param hair_type query string false "straight | wavy | curly | coily"
// @Param answers   query string false "JSON object of answers so far"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /quiz/questions [get]
func (q *QuizController) GetQuestions(c *gin.Context) {
	answers := engine.Answers{}
	if raw := c.Query("answers"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &answers); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "answers must be a JSON object")
			return
		}
	}

	resp := q.quizService.Questions(c.Query("hair_type"), answers)
	utils.RespondSuccess(c, resp, "Fetched questions successfully")
}

// Preview godoc
// @Summary Preview a routine
// @Description Generates a routine from answers without saving anything
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body request_models.PreviewQuizRequest true "Quiz answers"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /quiz/preview [post]
func (q *QuizController) Preview(c *gin.Context) {
	var req request_models.PreviewQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	routine, err := q.quizService.Preview(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, routine, "Routine generated")
}

// Submit godoc
// @Summary Submit the quiz
// @Description Saves the lead, generates the routine, stores the guide and emails it
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body request_models.SubmitQuizRequest true "Submission"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /quiz/submit [post]
func (q *QuizController) Submit(c *gin.Context) {
	var req request_models.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := q.quizService.Submit(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Routine created successfully")
}

// RecordAnalytics godoc
// @Summary Record quiz progress
// @Description Tracks quiz_started, question_viewed and question_answered events for a session
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body request_models.AnalyticsRequest true "Analytics event"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /quiz/analytics [post]
func (q *QuizController) RecordAnalytics(c *gin.Context) {
	var req request_models.AnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	progress, err := q.quizService.RecordAnalytics(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, progress, "Event recorded")
}
