package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/task"
	"github.com/majordomo-io/majordomo/pkg/agent"
	"github.com/majordomo-io/majordomo/pkg/config"
	"github.com/majordomo-io/majordomo/pkg/events"
	"github.com/majordomo-io/majordomo/pkg/models"
	"github.com/majordomo-io/majordomo/pkg/services"
)

// --- runner ---

type runnerReply struct {
	result *agent.Result
	err    error
}

// fakeRunner replays scripted replies in order, repeating the last one,
// and records every plan it was given.
type fakeRunner struct {
	mu      sync.Mutex
	plans   []*agent.QueryPlan
	replies []runnerReply
}

func respondWith(response, sessionID string) *fakeRunner {
	return &fakeRunner{replies: []runnerReply{
		{result: &agent.Result{Response: response, SessionID: sessionID}},
	}}
}

func failWith(err error) *fakeRunner {
	return &fakeRunner{replies: []runnerReply{{err: err}}}
}

func (r *fakeRunner) Run(_ context.Context, plan *agent.QueryPlan) (*agent.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans = append(r.plans, plan)
	if len(r.replies) == 0 {
		return &agent.Result{}, nil
	}
	reply := r.replies[0]
	if len(r.replies) > 1 {
		r.replies = r.replies[1:]
	}
	return reply.result, reply.err
}

func (r *fakeRunner) Stream(context.Context, *agent.QueryPlan) (<-chan agent.StreamEvent, error) {
	return nil, errors.New("streaming not supported")
}

func (r *fakeRunner) lastPlan() *agent.QueryPlan {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.plans) == 0 {
		return nil
	}
	return r.plans[len(r.plans)-1]
}

// --- conversation store ---

type fakeConversationStore struct {
	mu      sync.Mutex
	convs   map[string]*ent.Conversation
	updates []models.ConversationUpdate
	claims  [][]*ent.Conversation
}

func newFakeConversationStore(convs ...*ent.Conversation) *fakeConversationStore {
	s := &fakeConversationStore{convs: make(map[string]*ent.Conversation)}
	for _, c := range convs {
		s.convs[c.ID] = c
	}
	return s
}

func (s *fakeConversationStore) GetConversation(_ context.Context, id string) (*ent.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.convs[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return conv, nil
}

func (s *fakeConversationStore) UpdateConversation(_ context.Context, id string, upd models.ConversationUpdate) (*ent.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.convs[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	s.updates = append(s.updates, upd)
	applyConversationUpdate(conv, upd)
	return conv, nil
}

func (s *fakeConversationStore) ClaimReady(context.Context, int, time.Duration) ([]*ent.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.claims) == 0 {
		return nil, nil
	}
	batch := s.claims[0]
	s.claims = s.claims[1:]
	return batch, nil
}

// applyConversationUpdate mirrors the service's update semantics so
// assertions can read the resulting row.
func applyConversationUpdate(conv *ent.Conversation, upd models.ConversationUpdate) {
	if upd.Title != nil {
		conv.Title = *upd.Title
	}
	if upd.Status != nil {
		conv.Status = *upd.Status
	}
	if upd.ClearSchedule {
		conv.ScheduleType = ""
		conv.CronExpression = ""
		conv.ScheduledRunAt = nil
	} else {
		if upd.ScheduleType != nil {
			conv.ScheduleType = *upd.ScheduleType
		}
		if upd.CronExpression != nil {
			conv.CronExpression = *upd.CronExpression
		}
		if upd.ScheduledRunAt != nil {
			conv.ScheduledRunAt = upd.ScheduledRunAt
		}
	}
	if upd.ClearNextRunAt {
		conv.NextRunAt = nil
	} else if upd.NextRunAt != nil {
		conv.NextRunAt = upd.NextRunAt
	}
	if upd.StateContext != nil {
		conv.StateContext = upd.StateContext
	}
	if upd.StateStep != nil {
		conv.StateStep = *upd.StateStep
	}
	if upd.StateData != nil {
		conv.StateData = upd.StateData
	}
	if upd.ClearPendingQuestion {
		conv.PendingQuestionType = ""
		conv.PendingQuestionPrompt = ""
		conv.PendingQuestionOptions = nil
	} else if upd.PendingQuestion != nil {
		conv.PendingQuestionType = upd.PendingQuestion.Type
		conv.PendingQuestionPrompt = upd.PendingQuestion.Prompt
		conv.PendingQuestionOptions = upd.PendingQuestion.Options
	}
	if upd.ClaudeSessionID != nil {
		conv.ClaudeSessionID = *upd.ClaudeSessionID
	}
	if upd.Skills != nil {
		conv.Skills = upd.Skills
	}
	if upd.ConsecutiveFailures != nil {
		conv.ConsecutiveFailures = *upd.ConsecutiveFailures
	}
	conv.UpdatedAt = time.Now()
}

// --- message store ---

type fakeMessageStore struct {
	mu        sync.Mutex
	history   []*ent.Message
	appended  []models.AppendMessageRequest
	appendErr error
}

func (s *fakeMessageStore) AppendMessage(_ context.Context, req models.AppendMessageRequest) (*ent.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appendErr != nil {
		return nil, s.appendErr
	}
	s.appended = append(s.appended, req)
	return &ent.Message{
		ID:             fmt.Sprintf("msg-%d", len(s.appended)),
		ConversationID: req.ConversationID,
		Role:           req.Role,
		Content:        req.Content,
		Source:         req.Source,
		CreatedAt:      time.Now(),
	}, nil
}

func (s *fakeMessageStore) LastMessages(context.Context, string, int) ([]*ent.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history, nil
}

// --- task store ---

type fakeTaskStore struct {
	mu        sync.Mutex
	tasks     map[string]*ent.Task
	created   []models.CreateTaskRequest
	updates   map[string][]models.TaskUpdate
	claims    [][]*ent.Task
	createErr error
}

func newFakeTaskStore(tasks ...*ent.Task) *fakeTaskStore {
	s := &fakeTaskStore{
		tasks:   make(map[string]*ent.Task),
		updates: make(map[string][]models.TaskUpdate),
	}
	for _, t := range tasks {
		s.tasks[t.ID] = t
	}
	return s
}

func (s *fakeTaskStore) CreateTask(_ context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, req)
	t := &ent.Task{
		ID:             fmt.Sprintf("task-%d", len(s.created)),
		ConversationID: req.ConversationID,
		UserID:         req.UserID,
		Name:           req.Name,
		Description:    req.Description,
		Status:         task.StatusActive,
		IntervalValue:  req.IntervalValue,
		IntervalUnit:   req.IntervalUnit,
		CronExpression: req.CronExpression,
		MaxRuns:        req.MaxRuns,
		TaskContext:    req.TaskContext,
	}
	s.tasks[t.ID] = t
	return t, nil
}

func (s *fakeTaskStore) FindTaskByName(_ context.Context, conversationID, name string) (*ent.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ConversationID == conversationID && strings.EqualFold(t.Name, name) && t.Status != task.StatusDeleted {
			return t, nil
		}
	}
	return nil, services.ErrNotFound
}

func (s *fakeTaskStore) ListTasks(_ context.Context, filters models.TaskFilters) (*models.TaskListResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*ent.Task
	for _, t := range s.tasks {
		if filters.ConversationID != "" && t.ConversationID != filters.ConversationID {
			continue
		}
		if filters.Status != "" && string(t.Status) != filters.Status {
			continue
		}
		out = append(out, t)
	}
	return &models.TaskListResponse{Tasks: out, TotalCount: len(out)}, nil
}

func (s *fakeTaskStore) UpdateTask(_ context.Context, taskID string, upd models.TaskUpdate) (*ent.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[taskID]
	if !ok {
		return nil, services.ErrNotFound
	}
	s.updates[taskID] = append(s.updates[taskID], upd)
	applyTaskUpdate(t, upd)
	return t, nil
}

func (s *fakeTaskStore) DeleteTask(_ context.Context, taskID string) (*ent.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[taskID]
	if !ok || t.Status == task.StatusDeleted {
		return nil, services.ErrNotFound
	}
	t.Status = task.StatusDeleted
	t.NextRunAt = nil
	return t, nil
}

func (s *fakeTaskStore) ClaimReady(context.Context, int, time.Duration) ([]*ent.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.claims) == 0 {
		return nil, nil
	}
	batch := s.claims[0]
	s.claims = s.claims[1:]
	return batch, nil
}

func strPtr(s string) *string { return &s }

func applyTaskUpdate(t *ent.Task, upd models.TaskUpdate) {
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	if upd.Status != nil {
		t.Status = *upd.Status
	}
	if upd.ClearNextRunAt {
		t.NextRunAt = nil
	} else if upd.NextRunAt != nil {
		t.NextRunAt = upd.NextRunAt
	}
	if upd.LastRunAt != nil {
		t.LastRunAt = upd.LastRunAt
	}
	if upd.CurrentRuns != nil {
		t.CurrentRuns = *upd.CurrentRuns
	}
	if upd.ConsecutiveFailures != nil {
		t.ConsecutiveFailures = *upd.ConsecutiveFailures
	}
	if upd.ClearLastError {
		t.LastError = nil
	} else if upd.LastError != nil {
		msg := *upd.LastError
		t.LastError = &msg
	}
	if upd.TaskContext != nil {
		t.TaskContext = upd.TaskContext
	}
	t.UpdatedAt = time.Now()
}

// --- notification store ---

type fakeNotificationStore struct {
	mu      sync.Mutex
	created []models.CreateNotificationRequest
}

func (s *fakeNotificationStore) CreateNotification(_ context.Context, req models.CreateNotificationRequest) (*ent.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, req)
	return &ent.Notification{
		ID:             fmt.Sprintf("notif-%d", len(s.created)),
		UserID:         req.UserID,
		ConversationID: req.ConversationID,
		Title:          req.Title,
		Body:           req.Body,
		CreatedAt:      time.Now(),
	}, nil
}

// --- integration store ---

type fakeIntegrationStore struct {
	integrations []*ent.Integration
}

func (s *fakeIntegrationStore) ListActiveIntegrations(context.Context, string) ([]*ent.Integration, error) {
	return s.integrations, nil
}

// --- event publisher ---

type fakePublisher struct {
	mu         sync.Mutex
	statuses   []events.ConversationStatusPayload
	taskEvents []events.TaskStatusPayload
	activity   []events.ConversationActivityPayload
}

func (p *fakePublisher) PublishConversationStatus(_ context.Context, _ string, payload events.ConversationStatusPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statuses = append(p.statuses, payload)
	return nil
}

func (p *fakePublisher) PublishTaskStatus(_ context.Context, _ string, payload events.TaskStatusPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.taskEvents = append(p.taskEvents, payload)
	return nil
}

func (p *fakePublisher) PublishConversationActivity(_ context.Context, _ string, payload events.ConversationActivityPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activity = append(p.activity, payload)
	return nil
}

// --- shared builders ---

func emptyAssembler() *agent.ToolkitAssembler {
	return agent.NewToolkitAssembler(
		config.NewSkillRegistry(map[string]*config.SkillConfig{}),
		config.NewMCPServerRegistry(map[string]*config.MCPServerConfig{}),
		nil,
	)
}
