package response_models

import "cougcuts/internal/engine"

type QuestionsResponse struct {
	HairType  string            `json:"hairType,omitempty"`
	Questions []engine.Question `json:"questions"`
	Total     int               `json:"total"`
}

type SubmitQuizResponse struct {
	Success     bool                    `json:"success"`
	LeadID      string                  `json:"leadId"`
	Routine     engine.GeneratedRoutine `json:"routine"`
	DocumentURL string                  `json:"documentUrl,omitempty"`
	EmailSent   bool                    `json:"emailSent"`
}

type SessionProgressResponse struct {
	SessionID          string         `json:"sessionId"`
	Completed          bool           `json:"completed"`
	LastQuestionViewed int            `json:"lastQuestionViewed"`
	TimeOnQuestions    map[string]int `json:"timeOnQuestions"`
}
