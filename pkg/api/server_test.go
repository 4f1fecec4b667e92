package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/conversation"
	"github.com/majordomo-io/majordomo/pkg/config"
	"github.com/majordomo-io/majordomo/pkg/mcp"
	"github.com/majordomo-io/majordomo/pkg/models"
	"github.com/majordomo-io/majordomo/pkg/queue"
	"github.com/majordomo-io/majordomo/pkg/services"
)

type fakeConversationAPI struct {
	conv       *ent.Conversation
	list       *models.ConversationListResponse
	err        error
	gotFilters models.ConversationFilters
	gotCreate  models.CreateConversationRequest
	archivedID string
}

func (f *fakeConversationAPI) CreateConversation(_ context.Context, req models.CreateConversationRequest) (*ent.Conversation, error) {
	f.gotCreate = req
	return f.conv, f.err
}

func (f *fakeConversationAPI) GetConversation(_ context.Context, _ string) (*ent.Conversation, error) {
	return f.conv, f.err
}

func (f *fakeConversationAPI) ListConversations(_ context.Context, filters models.ConversationFilters) (*models.ConversationListResponse, error) {
	f.gotFilters = filters
	return f.list, f.err
}

func (f *fakeConversationAPI) ArchiveConversation(_ context.Context, conversationID string) (*ent.Conversation, error) {
	f.archivedID = conversationID
	return f.conv, f.err
}

type fakeMessageAPI struct {
	resp      *models.MessageListResponse
	err       error
	gotLimit  int
	gotOffset int
}

func (f *fakeMessageAPI) ListMessages(_ context.Context, _ string, limit, offset int) (*models.MessageListResponse, error) {
	f.gotLimit = limit
	f.gotOffset = offset
	return f.resp, f.err
}

type fakeTaskAPI struct {
	task    *ent.Task
	list    *models.TaskListResponse
	err     error
	paused  []string
	resumed []string
	deleted []string
}

func (f *fakeTaskAPI) ListTasks(_ context.Context, _ models.TaskFilters) (*models.TaskListResponse, error) {
	return f.list, f.err
}

func (f *fakeTaskAPI) GetTask(_ context.Context, _ string) (*ent.Task, error) {
	return f.task, f.err
}

func (f *fakeTaskAPI) PauseTask(_ context.Context, taskID string) (*ent.Task, error) {
	f.paused = append(f.paused, taskID)
	return f.task, f.err
}

func (f *fakeTaskAPI) ResumeTask(_ context.Context, taskID string) (*ent.Task, error) {
	f.resumed = append(f.resumed, taskID)
	return f.task, f.err
}

func (f *fakeTaskAPI) DeleteTask(_ context.Context, taskID string) (*ent.Task, error) {
	f.deleted = append(f.deleted, taskID)
	return f.task, f.err
}

type fakeNotificationAPI struct {
	resp      *models.NotificationListResponse
	err       error
	markedID  string
	markedAll string
	count     int
}

func (f *fakeNotificationAPI) ListNotifications(_ context.Context, _ models.NotificationFilters) (*models.NotificationListResponse, error) {
	return f.resp, f.err
}

func (f *fakeNotificationAPI) MarkRead(_ context.Context, notificationID string) (*ent.Notification, error) {
	f.markedID = notificationID
	return &ent.Notification{ID: notificationID, Read: true}, f.err
}

func (f *fakeNotificationAPI) MarkAllRead(_ context.Context, userID string) (int, error) {
	f.markedAll = userID
	return f.count, f.err
}

type fakeIntegrationAPI struct {
	integ          *ent.Integration
	err            error
	gotUpsert      models.UpsertIntegrationRequest
	deactivatedFor string
}

func (f *fakeIntegrationAPI) UpsertIntegration(_ context.Context, req models.UpsertIntegrationRequest) (*ent.Integration, error) {
	f.gotUpsert = req
	return f.integ, f.err
}

func (f *fakeIntegrationAPI) ListIntegrations(_ context.Context, _ string) ([]*ent.Integration, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*ent.Integration{f.integ}, nil
}

func (f *fakeIntegrationAPI) DeactivateIntegration(_ context.Context, userID, provider string) (*ent.Integration, error) {
	f.deactivatedFor = userID + "/" + provider
	return f.integ, f.err
}

type fakeChatAPI struct {
	result     *models.ChatTurnResult
	err        error
	gotID      string
	gotContent string
	calls      int
}

func (f *fakeChatAPI) ProcessTurn(_ context.Context, conversationID, content string) (*models.ChatTurnResult, error) {
	f.calls++
	f.gotID = conversationID
	f.gotContent = content
	return f.result, f.err
}

type fakeSealer struct{ err error }

func (f *fakeSealer) Encrypt(plaintext string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "sealed:" + plaintext, nil
}

type fakeWorker struct{ health queue.WorkerHealth }

func (f *fakeWorker) Health() queue.WorkerHealth { return f.health }

type fakeMCPReporter struct{ statuses []*mcp.HealthStatus }

func (f *fakeMCPReporter) Statuses() []*mcp.HealthStatus { return f.statuses }

type apiFixture struct {
	conversations *fakeConversationAPI
	messages      *fakeMessageAPI
	tasks         *fakeTaskAPI
	notifications *fakeNotificationAPI
	integrations  *fakeIntegrationAPI
	chat          *fakeChatAPI
	router        *gin.Engine
	server        *Server
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	f := &apiFixture{
		conversations: &fakeConversationAPI{
			conv: &ent.Conversation{ID: "conv-1", UserID: "user-1", Status: conversation.StatusActive},
			list: &models.ConversationListResponse{Conversations: []*ent.Conversation{}, TotalCount: 0},
		},
		messages: &fakeMessageAPI{resp: &models.MessageListResponse{Messages: []*ent.Message{}}},
		tasks: &fakeTaskAPI{
			task: &ent.Task{ID: "task-1", Name: "inbox sweep"},
			list: &models.TaskListResponse{Tasks: []*ent.Task{}},
		},
		notifications: &fakeNotificationAPI{resp: &models.NotificationListResponse{}, count: 3},
		integrations:  &fakeIntegrationAPI{integ: &ent.Integration{ID: "int-1", Provider: "gmail", IsActive: true}},
		chat: &fakeChatAPI{result: &models.ChatTurnResult{
			Status: conversation.StatusActive,
		}},
	}

	f.server = NewServer(config.DefaultSystemConfig(), Deps{
		Conversations: f.conversations,
		Messages:      f.messages,
		Tasks:         f.tasks,
		Notifications: f.notifications,
		Integrations:  f.integrations,
		Chat:          f.chat,
		Sealer:        &fakeSealer{},
	})
	f.router = f.server.Routes()
	return f
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestListConversationsPassesFilters(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/api/conversations?user_id=user-1&status=active&include_archived=true&limit=10&offset=5", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ConversationFilters{
		UserID:          "user-1",
		Status:          "active",
		IncludeArchived: true,
		Limit:           10,
		Offset:          5,
	}, f.conversations.gotFilters)
}

func TestCreateConversation(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/api/conversations", gin.H{
		"user_id": "user-1",
		"title":   "Trip planning",
		"skills":  []string{"travel"},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "user-1", f.conversations.gotCreate.UserID)
	assert.Equal(t, "Trip planning", f.conversations.gotCreate.Title)
	assert.Equal(t, []string{"travel"}, f.conversations.gotCreate.Skills)
}

func TestCreateConversationRejectsBadJSON(t *testing.T) {
	f := newAPIFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/conversations", bytes.NewBufferString("{nope"))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateConversationValidationError(t *testing.T) {
	f := newAPIFixture(t)
	f.conversations.err = services.NewValidationError("user_id", "required")

	w := f.do(t, http.MethodPost, "/api/conversations", gin.H{"title": "no user"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "user_id")
}

func TestGetConversationNotFound(t *testing.T) {
	f := newAPIFixture(t)
	f.conversations.err = services.ErrNotFound

	w := f.do(t, http.MethodGet, "/api/conversations/missing", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "resource not found", decodeBody(t, w)["error"])
}

func TestArchiveConversation(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/api/conversations/conv-1/archive", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "conv-1", f.conversations.archivedID)
}

func TestListMessagesPagination(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/api/conversations/conv-1/messages?limit=25&offset=50", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 25, f.messages.gotLimit)
	assert.Equal(t, 50, f.messages.gotOffset)
}

func TestChatTurn(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/api/conversations/conv-1/messages", gin.H{"content": "hello"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "conv-1", f.chat.gotID)
	assert.Equal(t, "hello", f.chat.gotContent)
}

func TestChatTurnRequiresContent(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/api/conversations/conv-1/messages", gin.H{"content": "   "})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, f.chat.calls)
}

func TestChatTurnConflictWhileBusy(t *testing.T) {
	f := newAPIFixture(t)
	f.chat.err = queue.ErrTurnInProgress

	w := f.do(t, http.MethodPost, "/api/conversations/conv-1/messages", gin.H{"content": "hello"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestChatTurnDuringShutdown(t *testing.T) {
	f := newAPIFixture(t)
	f.chat.err = queue.ErrExecutorStopped

	w := f.do(t, http.MethodPost, "/api/conversations/conv-1/messages", gin.H{"content": "hello"})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestChatTurnArchivedConflict(t *testing.T) {
	f := newAPIFixture(t)
	f.chat.err = services.ErrArchived

	w := f.do(t, http.MethodPost, "/api/conversations/conv-1/messages", gin.H{"content": "hello"})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "conversation is archived", decodeBody(t, w)["error"])
}

func TestTaskLifecycleRoutes(t *testing.T) {
	f := newAPIFixture(t)

	assert.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/tasks/task-1/pause", nil).Code)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/tasks/task-1/resume", nil).Code)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodDelete, "/api/tasks/task-1", nil).Code)

	assert.Equal(t, []string{"task-1"}, f.tasks.paused)
	assert.Equal(t, []string{"task-1"}, f.tasks.resumed)
	assert.Equal(t, []string{"task-1"}, f.tasks.deleted)
}

func TestListNotificationsRequiresUserID(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/api/notifications", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkAllRead(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/api/notifications/read-all?user_id=user-1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", f.notifications.markedAll)
	assert.Equal(t, float64(3), decodeBody(t, w)["marked_read"])
}

func TestMarkRead(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/api/notifications/notif-7/read", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "notif-7", f.notifications.markedID)
}

func TestConnectIntegrationSealsTokens(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPut, "/api/integrations/gmail", gin.H{
		"user_id":       "user-1",
		"access_token":  "tok",
		"refresh_token": "ref",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gmail", f.integrations.gotUpsert.Provider)
	assert.Equal(t, "user-1", f.integrations.gotUpsert.UserID)
	assert.Equal(t, "sealed:tok", f.integrations.gotUpsert.AccessToken)
	assert.Equal(t, "sealed:ref", f.integrations.gotUpsert.RefreshToken)
}

func TestConnectIntegrationWithoutTokens(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPut, "/api/integrations/gmail", gin.H{
		"user_id":  "user-1",
		"metadata": gin.H{"email": "a@b.c"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, f.integrations.gotUpsert.AccessToken)
	assert.Empty(t, f.integrations.gotUpsert.RefreshToken)
	assert.Equal(t, map[string]any{"email": "a@b.c"}, f.integrations.gotUpsert.Metadata)
}

func TestDisconnectIntegration(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodDelete, "/api/integrations/gmail?user_id=user-1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1/gmail", f.integrations.deactivatedFor)
}

func TestListIntegrationsRequiresUserID(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/api/integrations", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthOK(t *testing.T) {
	f := newAPIFixture(t)
	f.server.deps.Workers = []WorkerReporter{
		&fakeWorker{health: queue.WorkerHealth{Name: "conversation-worker", Running: true, LastPollAt: time.Now()}},
	}
	f.server.deps.MCP = &fakeMCPReporter{statuses: []*mcp.HealthStatus{
		{ServerID: "calendar", Healthy: true, ToolCount: 4},
	}}
	f.router = f.server.Routes()

	w := f.do(t, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "ok", body["status"])
}

func TestHealthDegradedWhenWorkerStopped(t *testing.T) {
	f := newAPIFixture(t)
	f.server.deps.Workers = []WorkerReporter{
		&fakeWorker{health: queue.WorkerHealth{Name: "task-worker", Running: false}},
	}
	f.router = f.server.Routes()

	w := f.do(t, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "degraded", decodeBody(t, w)["status"])
}

func TestHealthDegradedWhenMCPServerDown(t *testing.T) {
	f := newAPIFixture(t)
	f.server.deps.MCP = &fakeMCPReporter{statuses: []*mcp.HealthStatus{
		{ServerID: "calendar", Healthy: false, Error: "connection refused"},
	}}
	f.router = f.server.Routes()

	w := f.do(t, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "degraded", decodeBody(t, w)["status"])
}

func TestSecurityHeaders(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestUnexpectedErrorIs500(t *testing.T) {
	f := newAPIFixture(t)
	f.tasks.err = assert.AnError

	w := f.do(t, http.MethodGet, "/api/tasks", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeBody(t, w)["error"])
}
