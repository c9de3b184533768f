package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"cougcuts/internal/engine"
	"cougcuts/internal/models/db_models"
	"cougcuts/internal/models/request_models"
	"cougcuts/internal/models/response_models"
	"cougcuts/internal/repositories"
	"cougcuts/pkg/utils"
)

type QuizServiceInterface interface {
	Questions(hairType string, answers engine.Answers) response_models.QuestionsResponse
	Preview(req request_models.PreviewQuizRequest) (engine.GeneratedRoutine, error)
	Submit(ctx context.Context, req request_models.SubmitQuizRequest) (*response_models.SubmitQuizResponse, error)
	RecordAnalytics(ctx context.Context, req request_models.AnalyticsRequest) (*response_models.SessionProgressResponse, error)
}

type QuizService struct {
	leads         repositories.LeadRepositoryInterface
	sessions      repositories.QuizSessionRepositoryInterface
	events        repositories.EmailEventRepositoryInterface
	mail          IMailService
	documents     RoutineDocumentService
	defaultBudget engine.Tier
	logger        *zap.Logger
	now           func() time.Time
}

func NewQuizService(
	leads repositories.LeadRepositoryInterface,
	sessions repositories.QuizSessionRepositoryInterface,
	events repositories.EmailEventRepositoryInterface,
	mail IMailService,
	documents RoutineDocumentService,
	defaultBudget engine.Tier,
	logger *zap.Logger,
) QuizServiceInterface {
	return newQuizService(leads, sessions, events, mail, documents, defaultBudget, logger)
}

func newQuizService(
	leads repositories.LeadRepositoryInterface,
	sessions repositories.QuizSessionRepositoryInterface,
	events repositories.EmailEventRepositoryInterface,
	mail IMailService,
	documents RoutineDocumentService,
	defaultBudget engine.Tier,
	logger *zap.Logger,
) *QuizService {
	if defaultBudget == "" {
		defaultBudget = engine.TierMid
	}
	return &QuizService{
		leads:         leads,
		sessions:      sessions,
		events:        events,
		mail:          mail,
		documents:     documents,
		defaultBudget: defaultBudget,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *QuizService) Questions(hairType string, answers engine.Answers) response_models.QuestionsResponse {
	if hairType == "" {
		hairType, _ = answers.Value(engine.QuestionHairType)
	}
	qs := engine.QuestionsFor(engine.HairType(hairType), answers)
	return response_models.QuestionsResponse{
		HairType:  hairType,
		Questions: qs,
		Total:     len(qs),
	}
}

// checkAnswers applies the submission rules shared by preview and submit.
func checkAnswers(answers engine.Answers) error {
	if len(answers) == 0 {
		return utils.ErrMissingAnswers
	}
	if _, ok := answers.Value(engine.QuestionHairType); !ok {
		return utils.ErrMissingHairType
	}
	if err := engine.ValidateAnswers(answers); err != nil {
		var ae *engine.AnswerError
		if errors.As(err, &ae) {
			return fmt.Errorf("%w: %s", utils.ErrInvalidAnswers, ae.Detail())
		}
		return fmt.Errorf("%w: %v", utils.ErrInvalidAnswers, err)
	}
	return nil
}

// engineInput derives the engine input from a raw answer set. Hair goals
// only count when answered as a list.
func (s *QuizService) engineInput(answers engine.Answers) engine.Input {
	hairType, _ := answers.Value(engine.QuestionHairType)

	goals := []string{}
	if a, ok := answers[engine.QuestionHairGoals]; ok && a.IsMulti() {
		goals = a.Values()
	}

	budget := s.defaultBudget
	if raw, ok := answers.Value(engine.QuestionBudget); ok {
		if t, known := engine.ParseTier(raw); known {
			budget = t
		}
	}

	return engine.Input{
		HairType:    engine.HairType(hairType),
		HairGoals:   goals,
		QuizAnswers: answers,
		Budget:      budget,
	}
}

func (s *QuizService) Preview(req request_models.PreviewQuizRequest) (engine.GeneratedRoutine, error) {
	if err := checkAnswers(req.Answers); err != nil {
		return engine.GeneratedRoutine{}, err
	}
	return engine.Generate(s.engineInput(req.Answers)), nil
}

func (s *QuizService) Submit(ctx context.Context, req request_models.SubmitQuizRequest) (*response_models.SubmitQuizResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, utils.ErrMissingEmail
	}
	if err := checkAnswers(req.Answers); err != nil {
		return nil, err
	}

	existing, err := s.leads.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: find lead: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, &utils.DuplicateLeadError{LeadID: existing.ID.String()}
	}

	in := s.engineInput(req.Answers)
	routine := engine.Generate(in)

	routineJSON, err := json.Marshal(routine)
	if err != nil {
		return nil, fmt.Errorf("encode routine: %w", err)
	}
	answersJSON, err := json.Marshal(req.Answers)
	if err != nil {
		return nil, fmt.Errorf("encode answers: %w", err)
	}

	lead := &db_models.Lead{
		Email:            email,
		Name:             strings.TrimSpace(req.Name),
		HairType:         string(in.HairType),
		HairGoals:        in.HairGoals,
		QuizAnswers:      datatypes.JSON(answersJSON),
		ProfileID:        routine.ProfileID,
		BudgetTier:       string(in.Budget),
		RoutineGenerated: true,
		RoutineText:      string(routineJSON),
	}
	if err := s.leads.CreateLead(ctx, lead); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost a race with a concurrent submission for the same email
			if other, ferr := s.leads.FindByEmail(ctx, email); ferr == nil && other != nil {
				return nil, &utils.DuplicateLeadError{LeadID: other.ID.String()}
			}
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("%w: create lead: %v", utils.ErrDatabaseError, err)
	}

	log := s.logger.With(
		zap.String("lead_id", lead.ID.String()),
		zap.String("profile_id", routine.ProfileID),
		zap.String("hair_type", lead.HairType),
	)
	log.Info("lead created")

	if req.SessionID != "" {
		completedAt := s.now().Unix()
		session := &db_models.QuizSession{
			SessionID:       req.SessionID,
			LeadID:          &lead.ID,
			Completed:       true,
			CompletedAt:     &completedAt,
			Answers:         datatypes.JSON(answersJSON),
			TimeOnQuestions: datatypes.JSON("{}"),
		}
		if err := s.sessions.UpsertCompletion(ctx, session); err != nil {
			return nil, fmt.Errorf("%w: complete session: %v", utils.ErrDatabaseError, err)
		}
	}

	documentURL := s.storeDocument(ctx, log, lead, routine)
	emailSent := s.deliverEmail(ctx, log, lead, routine, documentURL)

	return &response_models.SubmitQuizResponse{
		Success:     true,
		LeadID:      lead.ID.String(),
		Routine:     routine,
		DocumentURL: documentURL,
		EmailSent:   emailSent,
	}, nil
}

// storeDocument renders and stores the routine guide. Failures are logged
// and leave the lead without a document.
func (s *QuizService) storeDocument(ctx context.Context, log *zap.Logger, lead *db_models.Lead, routine engine.GeneratedRoutine) string {
	doc, err := s.documents.Render(lead, routine)
	if err != nil {
		log.Warn("routine document render failed", zap.Error(err))
		return ""
	}
	url, err := s.documents.Store(ctx, lead.ID, doc)
	if err != nil {
		log.Warn("routine document store failed", zap.Error(err))
		return ""
	}
	if err := s.leads.UpdateFields(ctx, lead.ID, map[string]interface{}{"routine_pdf_url": url}); err != nil {
		log.Warn("saving document url failed", zap.Error(err))
	}
	lead.RoutinePdfURL = url
	return url
}

// deliverEmail sends the routine email and records the outcome. Failures are
// logged; the lead stays saved so the email can be retried.
func (s *QuizService) deliverEmail(ctx context.Context, log *zap.Logger, lead *db_models.Lead, routine engine.GeneratedRoutine, documentURL string) bool {
	err := s.mail.SendRoutineEmail(ctx, lead, routine, documentURL)
	if errors.Is(err, ErrMailNotConfigured) {
		log.Info("mail disabled, routine email not sent")
		return false
	}
	if err != nil {
		log.Warn("routine email send failed", zap.Error(err))
		s.recordEmailEvent(ctx, log, lead.ID, db_models.EmailEventFailed, map[string]string{"error": err.Error()})
		return false
	}

	sentAt := s.now().Unix()
	if err := s.leads.UpdateFields(ctx, lead.ID, map[string]interface{}{
		"email_sequence_started": true,
		"last_email_sent":        sentAt,
	}); err != nil {
		log.Warn("marking email sent failed", zap.Error(err))
	}
	lead.EmailSequenceStarted = true
	lead.LastEmailSent = &sentAt

	s.recordEmailEvent(ctx, log, lead.ID, db_models.EmailEventSent, map[string]string{"pdfUrl": documentURL})
	return true
}

func (s *QuizService) recordEmailEvent(ctx context.Context, log *zap.Logger, leadID uuid.UUID, eventType db_models.EmailEventType, metadata map[string]string) {
	meta, _ := json.Marshal(metadata)
	event := &db_models.EmailEvent{
		LeadID:    leadID,
		EventType: eventType,
		EmailType: db_models.EmailTypeRoutineDelivery,
		Metadata:  datatypes.JSON(meta),
	}
	if err := s.events.CreateEvent(ctx, event); err != nil {
		log.Warn("recording email event failed", zap.String("event_type", string(eventType)), zap.Error(err))
	}
}

func (s *QuizService) RecordAnalytics(ctx context.Context, req request_models.AnalyticsRequest) (*response_models.SessionProgressResponse, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return nil, utils.ErrSessionRequired
	}
	if req.QuestionID != "" {
		if _, ok := engine.QuestionByID(req.QuestionID); !ok {
			return nil, fmt.Errorf("%w: unknown question %q", utils.ErrInvalidAnswers, req.QuestionID)
		}
	}

	var out response_models.SessionProgressResponse
	err := s.sessions.UpdateProgress(ctx, req.SessionID, func(session *db_models.QuizSession) error {
		timings, err := decodeTimings(session.TimeOnQuestions)
		if err != nil {
			return err
		}

		switch req.Event {
		case request_models.EventQuestionViewed, request_models.EventQuestionAnswered:
			if req.QuestionIndex != nil && *req.QuestionIndex > session.LastQuestionViewed {
				session.LastQuestionViewed = *req.QuestionIndex
			}
		}
		if req.Event == request_models.EventQuestionAnswered && req.QuestionID != "" {
			if req.Seconds > 0 {
				timings[req.QuestionID] += req.Seconds
			}
			if req.Answer != nil && !session.Completed {
				if err := setSessionAnswer(session, req.QuestionID, *req.Answer); err != nil {
					return err
				}
			}
		}

		encoded, err := json.Marshal(timings)
		if err != nil {
			return err
		}
		session.TimeOnQuestions = datatypes.JSON(encoded)

		out = response_models.SessionProgressResponse{
			SessionID:          session.SessionID,
			Completed:          session.Completed,
			LastQuestionViewed: session.LastQuestionViewed,
			TimeOnQuestions:    timings,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: record analytics: %v", utils.ErrDatabaseError, err)
	}

	s.logger.Debug("quiz analytics recorded",
		zap.String("session_id", req.SessionID),
		zap.String("event", req.Event),
		zap.String("question_id", req.QuestionID))
	return &out, nil
}

func decodeTimings(raw datatypes.JSON) (map[string]int, error) {
	timings := map[string]int{}
	if len(raw) == 0 {
		return timings, nil
	}
	if err := json.Unmarshal(raw, &timings); err != nil {
		return nil, fmt.Errorf("decode time on questions: %w", err)
	}
	return timings, nil
}

func setSessionAnswer(session *db_models.QuizSession, questionID string, answer engine.Answer) error {
	answers := engine.Answers{}
	if len(session.Answers) > 0 {
		if err := json.Unmarshal(session.Answers, &answers); err != nil {
			return fmt.Errorf("decode session answers: %w", err)
		}
	}
	answers[questionID] = answer
	encoded, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	session.Answers = datatypes.JSON(encoded)
	return nil
}
