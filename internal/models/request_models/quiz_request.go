package request_models

import "cougcuts/internal/engine"

type SubmitQuizRequest struct {
	SessionID string         `json:"sessionId"`
	Email     string         `json:"email" binding:"omitempty,email"`
	Name      string         `json:"name"`
	Answers   engine.Answers `json:"answers"`
}

type PreviewQuizRequest struct {
	Answers engine.Answers `json:"answers"`
}

// Analytics event names sent by the quiz front end.
const (
	EventQuizStarted      = "quiz_started"
	EventQuestionViewed   = "question_viewed"
	EventQuestionAnswered = "question_answered"
)

type AnalyticsRequest struct {
	SessionID     string         `json:"sessionId"`
	Event         string         `json:"event" binding:"required,oneof=quiz_started question_viewed question_answered"`
	QuestionIndex *int           `json:"questionIndex" binding:"omitempty,min=0"`
	QuestionID    string         `json:"questionId"`
	Answer        *engine.Answer `json:"answer"`
	Seconds       int            `json:"seconds" binding:"min=0"`
}
