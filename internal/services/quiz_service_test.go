package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cougcuts/internal/engine"
	"cougcuts/internal/models/db_models"
	"cougcuts/internal/models/request_models"
	"cougcuts/pkg/utils"
)

type quizFixture struct {
	svc      *QuizService
	leads    *fakeLeadRepo
	sessions *fakeSessionRepo
	events   *fakeEventRepo
	mail     *fakeMail
	docs     *fakeDocuments
}

func newQuizFixture() *quizFixture {
	f := &quizFixture{
		leads:    newFakeLeadRepo(),
		sessions: newFakeSessionRepo(),
		events:   &fakeEventRepo{},
		mail:     &fakeMail{},
		docs:     &fakeDocuments{},
	}
	f.svc = newQuizService(f.leads, f.sessions, f.events, f.mail, f.docs, engine.TierMid, zap.NewNop())
	return f
}

func curlyAnswers() engine.Answers {
	return engine.Answers{
		"hair_type":      engine.Single("curly"),
		"hair_goals":     engine.Multi("moisture"),
		"porosity":       engine.Single("low"),
		"activity_level": engine.Single("very_active"),
		"budget":         engine.Single("low"),
	}
}

func TestSubmit_HappyPath(t *testing.T) {
	f := newQuizFixture()

	resp, err := f.svc.Submit(context.Background(), request_models.SubmitQuizRequest{
		SessionID: "sess-1",
		Email:     " Butch@WSU.edu ",
		Name:      "Butch",
		Answers:   curlyAnswers(),
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.True(t, resp.EmailSent)
	assert.Equal(t, "curly_low_very_active_low", resp.Routine.ProfileID)
	assert.True(t, strings.HasPrefix(resp.Routine.Challenge, "Low porosity means products sit on your hair"))

	lead, err := f.leads.FindByEmail(context.Background(), "butch@wsu.edu")
	require.NoError(t, err)
	require.NotNil(t, lead)
	assert.Equal(t, resp.LeadID, lead.ID.String())
	assert.Equal(t, "curly", lead.HairType)
	assert.Equal(t, []string{"moisture"}, []string(lead.HairGoals))
	assert.Equal(t, "low", lead.BudgetTier)
	assert.True(t, lead.RoutineGenerated)

	var stored engine.GeneratedRoutine
	require.NoError(t, json.Unmarshal([]byte(lead.RoutineText), &stored))
	assert.Equal(t, resp.Routine.ProfileID, stored.ProfileID)

	session, _ := f.sessions.FindBySessionID(context.Background(), "sess-1")
	require.NotNil(t, session)
	assert.True(t, session.Completed)
	assert.NotNil(t, session.CompletedAt)
	assert.Equal(t, lead.ID, *session.LeadID)

	assert.Equal(t, 1, f.docs.stored)
	assert.Equal(t, resp.DocumentURL, f.mail.lastURL)
	assert.Equal(t, 1, f.mail.calls)

	require.Len(t, f.events.events, 1)
	assert.Equal(t, db_models.EmailEventSent, f.events.events[0].EventType)
	assert.Equal(t, db_models.EmailTypeRoutineDelivery, f.events.events[0].EmailType)
	assert.Equal(t, resp.DocumentURL, f.events.metadata(0)["pdfUrl"])

	require.Len(t, f.leads.updates, 2)
	assert.Equal(t, resp.DocumentURL, f.leads.updates[0]["routine_pdf_url"])
	assert.Equal(t, true, f.leads.updates[1]["email_sequence_started"])
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  request_models.SubmitQuizRequest
		want error
	}{
		{"missing email", request_models.SubmitQuizRequest{Answers: curlyAnswers()}, utils.ErrMissingEmail},
		{"missing answers", request_models.SubmitQuizRequest{Email: "a@wsu.edu"}, utils.ErrMissingAnswers},
		{"missing hair type", request_models.SubmitQuizRequest{
			Email:   "a@wsu.edu",
			Answers: engine.Answers{"budget": engine.Single("low")},
		}, utils.ErrMissingHairType},
		{"unknown option", request_models.SubmitQuizRequest{
			Email:   "a@wsu.edu",
			Answers: engine.Answers{"hair_type": engine.Single("curly"), "porosity": engine.Single("medium")},
		}, utils.ErrInvalidAnswers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newQuizFixture()
			_, err := f.svc.Submit(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, f.leads.byEmail)
		})
	}
}

func TestSubmit_InvalidAnswersMessage(t *testing.T) {
	f := newQuizFixture()
	_, err := f.svc.Submit(context.Background(), request_models.SubmitQuizRequest{
		Email:   "a@wsu.edu",
		Answers: engine.Answers{"hair_type": engine.Single("curly"), "porosity": engine.Single("medium")},
	})
	require.Error(t, err)
	assert.Equal(t, `invalid answers: porosity: unknown option "medium"`, err.Error())
}

func TestSubmit_DuplicateEmail(t *testing.T) {
	f := newQuizFixture()
	req := request_models.SubmitQuizRequest{Email: "butch@wsu.edu", Answers: curlyAnswers()}

	first, err := f.svc.Submit(context.Background(), req)
	require.NoError(t, err)

	_, err = f.svc.Submit(context.Background(), req)
	var dup *utils.DuplicateLeadError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, first.LeadID, dup.LeadID)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
	assert.Equal(t, 1, f.mail.calls)
}

// racingLeadRepo misses the first lookup, as if another request created the
// lead between the check and the insert.
type racingLeadRepo struct {
	*fakeLeadRepo
	lookups int
}

func (r *racingLeadRepo) FindByEmail(ctx context.Context, email string) (*db_models.Lead, error) {
	r.lookups++
	if r.lookups == 1 {
		return nil, nil
	}
	return r.fakeLeadRepo.FindByEmail(ctx, email)
}

func TestSubmit_DuplicateDuringInsert(t *testing.T) {
	f := newQuizFixture()
	_, err := f.svc.Submit(context.Background(), request_models.SubmitQuizRequest{Email: "butch@wsu.edu", Answers: curlyAnswers()})
	require.NoError(t, err)
	existing, _ := f.leads.FindByEmail(context.Background(), "butch@wsu.edu")

	racing := &racingLeadRepo{fakeLeadRepo: f.leads}
	svc := newQuizService(racing, f.sessions, f.events, f.mail, f.docs, engine.TierMid, zap.NewNop())
	_, err = svc.Submit(context.Background(), request_models.SubmitQuizRequest{Email: "butch@wsu.edu", Answers: curlyAnswers()})

	var dup *utils.DuplicateLeadError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, existing.ID.String(), dup.LeadID)
}

func TestSubmit_DatabaseErrors(t *testing.T) {
	f := newQuizFixture()
	f.leads.findErr = errors.New("connection reset")
	_, err := f.svc.Submit(context.Background(), request_models.SubmitQuizRequest{Email: "a@wsu.edu", Answers: curlyAnswers()})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)

	f = newQuizFixture()
	f.sessions.upsertErr = errors.New("deadlock")
	_, err = f.svc.Submit(context.Background(), request_models.SubmitQuizRequest{SessionID: "s", Email: "a@wsu.edu", Answers: curlyAnswers()})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestSubmit_DefaultsBudgetAndGoals(t *testing.T) {
	f := newQuizFixture()
	answers := engine.Answers{
		"hair_type":  engine.Single("wavy"),
		"hair_goals": engine.Single("frizz"),
	}

	resp, err := f.svc.Submit(context.Background(), request_models.SubmitQuizRequest{Email: "a@wsu.edu", Answers: answers})
	require.NoError(t, err)
	assert.Equal(t, "wavy_mid", resp.Routine.ProfileID)

	lead, _ := f.leads.FindByEmail(context.Background(), "a@wsu.edu")
	assert.Equal(t, "mid", lead.BudgetTier)
	assert.Empty(t, lead.HairGoals)
}

func TestSubmit_DocumentFailureIsNotFatal(t *testing.T) {
	f := newQuizFixture()
	f.docs.storeErr = errors.New("disk full")

	resp, err := f.svc.Submit(context.Background(), request_models.SubmitQuizRequest{Email: "a@wsu.edu", Answers: curlyAnswers()})
	require.NoError(t, err)
	assert.Empty(t, resp.DocumentURL)
	assert.True(t, resp.EmailSent)
	assert.Equal(t, "", f.mail.lastURL)
}

func TestSubmit_EmailFailureIsNotFatal(t *testing.T) {
	f := newQuizFixture()
	f.mail.err = errors.New("535 auth failed")

	resp, err := f.svc.Submit(context.Background(), request_models.SubmitQuizRequest{Email: "a@wsu.edu", Answers: curlyAnswers()})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.False(t, resp.EmailSent)

	require.Len(t, f.events.events, 1)
	assert.Equal(t, db_models.EmailEventFailed, f.events.events[0].EventType)
	assert.Equal(t, "535 auth failed", f.events.metadata(0)["error"])
	for _, u := range f.leads.updates {
		assert.NotContains(t, u, "email_sequence_started")
	}
}

func TestSubmit_MailDisabled(t *testing.T) {
	f := newQuizFixture()
	f.mail.err = ErrMailNotConfigured

	resp, err := f.svc.Submit(context.Background(), request_models.SubmitQuizRequest{Email: "a@wsu.edu", Answers: curlyAnswers()})
	require.NoError(t, err)
	assert.False(t, resp.EmailSent)
	assert.Empty(t, f.events.events)
}

func TestPreview(t *testing.T) {
	f := newQuizFixture()

	routine, err := f.svc.Preview(request_models.PreviewQuizRequest{Answers: curlyAnswers()})
	require.NoError(t, err)
	assert.Equal(t, engine.Generate(engine.Input{
		HairType:    engine.HairCurly,
		HairGoals:   []string{"moisture"},
		QuizAnswers: curlyAnswers(),
		Budget:      engine.TierLow,
	}), routine)
	assert.Empty(t, f.leads.byEmail)

	_, err = f.svc.Preview(request_models.PreviewQuizRequest{})
	assert.ErrorIs(t, err, utils.ErrMissingAnswers)
}

func TestQuestions(t *testing.T) {
	f := newQuizFixture()

	resp := f.svc.Questions("wavy", engine.Answers{})
	assert.Equal(t, "wavy", resp.HairType)
	assert.Equal(t, len(resp.Questions), resp.Total)
	assert.Equal(t, engine.QuestionBudget, resp.Questions[resp.Total-1].ID)

	fromAnswers := f.svc.Questions("", engine.Answers{"hair_type": engine.Single("curly")})
	assert.Equal(t, "curly", fromAnswers.HairType)
	assert.Equal(t, engine.QuestionsFor(engine.HairCurly, engine.Answers{"hair_type": engine.Single("curly")}), fromAnswers.Questions)
}

func intPtr(n int) *int { return &n }

func TestRecordAnalytics(t *testing.T) {
	f := newQuizFixture()
	ctx := context.Background()

	_, err := f.svc.RecordAnalytics(ctx, request_models.AnalyticsRequest{SessionID: "s1", Event: request_models.EventQuizStarted})
	require.NoError(t, err)

	_, err = f.svc.RecordAnalytics(ctx, request_models.AnalyticsRequest{
		SessionID: "s1", Event: request_models.EventQuestionViewed, QuestionIndex: intPtr(3),
	})
	require.NoError(t, err)

	answer := engine.Single("low")
	_, err = f.svc.RecordAnalytics(ctx, request_models.AnalyticsRequest{
		SessionID: "s1", Event: request_models.EventQuestionAnswered, QuestionIndex: intPtr(2),
		QuestionID: "porosity", Answer: &answer, Seconds: 7,
	})
	require.NoError(t, err)

	progress, err := f.svc.RecordAnalytics(ctx, request_models.AnalyticsRequest{
		SessionID: "s1", Event: request_models.EventQuestionAnswered, QuestionID: "porosity", Seconds: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, "s1", progress.SessionID)
	assert.False(t, progress.Completed)
	assert.Equal(t, 3, progress.LastQuestionViewed)
	assert.Equal(t, map[string]int{"porosity": 11}, progress.TimeOnQuestions)

	session, _ := f.sessions.FindBySessionID(ctx, "s1")
	var saved engine.Answers
	require.NoError(t, json.Unmarshal(session.Answers, &saved))
	assert.True(t, saved.Is("porosity", "low"))
}

func TestRecordAnalytics_RequiresSession(t *testing.T) {
	f := newQuizFixture()
	_, err := f.svc.RecordAnalytics(context.Background(), request_models.AnalyticsRequest{Event: request_models.EventQuizStarted})
	assert.ErrorIs(t, err, utils.ErrSessionRequired)
}

func TestRecordAnalytics_UnknownQuestion(t *testing.T) {
	f := newQuizFixture()
	_, err := f.svc.RecordAnalytics(context.Background(), request_models.AnalyticsRequest{
		SessionID: "s1", Event: request_models.EventQuestionAnswered, QuestionID: "shoe_size", Seconds: 3,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidAnswers)

	assert.Empty(t, f.sessions.sessions)
}

func TestRecordAnalytics_CorruptTimings(t *testing.T) {
	f := newQuizFixture()
	f.sessions.sessions["bad"] = &db_models.QuizSession{SessionID: "bad", TimeOnQuestions: []byte("not json")}

	_, err := f.svc.RecordAnalytics(context.Background(), request_models.AnalyticsRequest{SessionID: "bad", Event: request_models.EventQuizStarted})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
