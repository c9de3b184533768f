package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cougcuts/internal/engine"
	"cougcuts/internal/models/db_models"
	"cougcuts/internal/repositories"
)

type fakeLeadRepo struct {
	mu        sync.Mutex
	byEmail   map[string]*db_models.Lead
	updates   []map[string]interface{}
	createErr error
	findErr   error
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{byEmail: map[string]*db_models.Lead{}}
}

func (f *fakeLeadRepo) CreateLead(ctx context.Context, lead *db_models.Lead) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if _, taken := f.byEmail[lead.Email]; taken {
		return gorm.ErrDuplicatedKey
	}
	if lead.ID == uuid.Nil {
		lead.ID = uuid.New()
	}
	cp := *lead
	f.byEmail[lead.Email] = &cp
	return nil
}

func (f *fakeLeadRepo) FindByEmail(ctx context.Context, email string) (*db_models.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	l, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (f *fakeLeadRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.byEmail {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeLeadRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, fields)
	return nil
}

func (f *fakeLeadRepo) ListLeads(ctx context.Context, page, pageSize int) ([]db_models.Lead, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.Lead
	for _, l := range f.byEmail {
		out = append(out, *l)
	}
	return out, int64(len(out)), nil
}

type fakeSessionRepo struct {
	mu        sync.Mutex
	sessions  map[string]*db_models.QuizSession
	upsertErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*db_models.QuizSession{}}
}

func (f *fakeSessionRepo) FindBySessionID(ctx context.Context, sessionID string) (*db_models.QuizSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSessionRepo) UpsertCompletion(ctx context.Context, session *db_models.QuizSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	cp := *session
	if existing, ok := f.sessions[session.SessionID]; ok {
		cp.LastQuestionViewed = existing.LastQuestionViewed
		cp.TimeOnQuestions = existing.TimeOnQuestions
	}
	f.sessions[session.SessionID] = &cp
	return nil
}

func (f *fakeSessionRepo) UpdateProgress(ctx context.Context, sessionID string, apply func(*db_models.QuizSession) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := db_models.QuizSession{SessionID: sessionID}
	if existing, ok := f.sessions[sessionID]; ok {
		s = *existing
	}
	if err := apply(&s); err != nil {
		return err
	}
	f.sessions[sessionID] = &s
	return nil
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events []db_models.EmailEvent
}

func (f *fakeEventRepo) CreateEvent(ctx context.Context, event *db_models.EmailEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeEventRepo) ListByLead(ctx context.Context, leadID uuid.UUID) ([]db_models.EmailEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.EmailEvent
	for _, e := range f.events {
		if e.LeadID == leadID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) metadata(i int) map[string]string {
	var m map[string]string
	_ = json.Unmarshal(f.events[i].Metadata, &m)
	return m
}

type fakeMail struct {
	err      error
	calls    int
	lastURL  string
	lastLead *db_models.Lead
}

func (f *fakeMail) SendRoutineEmail(ctx context.Context, lead *db_models.Lead, routine engine.GeneratedRoutine, documentURL string) error {
	f.calls++
	f.lastURL = documentURL
	f.lastLead = lead
	return f.err
}

type fakeDocuments struct {
	renderErr error
	storeErr  error
	stored    int
}

func (f *fakeDocuments) Render(lead *db_models.Lead, routine engine.GeneratedRoutine) ([]byte, error) {
	if f.renderErr != nil {
		return nil, f.renderErr
	}
	return []byte("<html>" + routine.ProfileID + "</html>"), nil
}

func (f *fakeDocuments) Store(ctx context.Context, leadID uuid.UUID, doc []byte) (string, error) {
	if f.storeErr != nil {
		return "", f.storeErr
	}
	f.stored++
	return "http://localhost:8080/routines/document/tok-" + leadID.String(), nil
}

func (f *fakeDocuments) Open(token string) (*StoredDocument, error) {
	return nil, nil
}

type fakeDashboardRepo struct {
	leads, newLeads    int64
	open, completed    int64
	sent, failed       int64
	hairTypes, budgets []repositories.GroupCount
	profiles           []repositories.GroupCount
	series             []repositories.BucketSum
	err                error

	gotStart, gotEnd time.Time
	gotInterval      string
	gotLimit         int
}

func (f *fakeDashboardRepo) CountLeads(ctx context.Context) (int64, error) { return f.leads, f.err }

func (f *fakeDashboardRepo) CountLeadsBetween(ctx context.Context, start, end time.Time) (int64, error) {
	f.gotStart, f.gotEnd = start, end
	return f.newLeads, nil
}

func (f *fakeDashboardRepo) CountSessions(ctx context.Context, completed bool) (int64, error) {
	if completed {
		return f.completed, nil
	}
	return f.open, nil
}

func (f *fakeDashboardRepo) CountEmailEvents(ctx context.Context, eventType db_models.EmailEventType) (int64, error) {
	if eventType == db_models.EmailEventFailed {
		return f.failed, nil
	}
	return f.sent, nil
}

func (f *fakeDashboardRepo) LeadsByHairType(ctx context.Context) ([]repositories.GroupCount, error) {
	return f.hairTypes, nil
}

func (f *fakeDashboardRepo) LeadsByBudget(ctx context.Context) ([]repositories.GroupCount, error) {
	return f.budgets, nil
}

func (f *fakeDashboardRepo) TopProfiles(ctx context.Context, limit int) ([]repositories.GroupCount, error) {
	f.gotLimit = limit
	return f.profiles, nil
}

func (f *fakeDashboardRepo) NewLeadsSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]repositories.BucketSum, error) {
	f.gotInterval = interval
	return f.series, nil
}
