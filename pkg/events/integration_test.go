package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/majordomo-io/majordomo/ent/conversation"
	"github.com/majordomo-io/majordomo/ent/task"
	"github.com/majordomo-io/majordomo/pkg/database"
	"github.com/majordomo-io/majordomo/pkg/models"
	"github.com/majordomo-io/majordomo/pkg/services"
	testdb "github.com/majordomo-io/majordomo/test/database"
	"github.com/majordomo-io/majordomo/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eventsTestEnv holds all wired-up components for an integration test.
type eventsTestEnv struct {
	dbClient     *database.Client
	publisher    *Publisher
	eventService *services.EventService
	manager      *ConnectionManager
	listener     *NotifyListener
	server       *httptest.Server
	userID       string // unique per test, keeps channels isolated
	channel      string // user:<userID>
}

// setupEventsTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupEventsTest(t *testing.T) *eventsTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	userID := uuid.New().String()
	channel := UserChannel(userID)

	// Real components
	publisher := NewPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	catchupQuerier := NewEventServiceAdapter(eventService)
	manager := NewConnectionManager(catchupQuerier, 5*time.Second)

	// The NotifyListener needs the base connection string (no schema
	// search_path) because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	// httptest server with WebSocket upgrade
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &eventsTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		manager:      manager,
		listener:     listener,
		server:       server,
		userID:       userID,
		channel:      channel,
	}
}

// connectWS opens a WebSocket to the test server. The connection is
// automatically closed on test cleanup.
func (env *eventsTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// subscribeAndWait connects a WebSocket, reads connection.established,
// subscribes to the env's user channel, reads subscription.confirmed, and
// waits for the LISTEN to propagate to the dedicated pgx connection.
func (env *eventsTestEnv) subscribeAndWait(t *testing.T) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	require.Eventually(t, func() bool {
		return env.listener.isListening(env.channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", env.channel)

	return conn
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupEventsTest(t)
	ctx := context.Background()

	// Publish first event (notification)
	err := env.publisher.PublishNotificationCreated(ctx, env.userID, NotificationCreatedPayload{
		BasePayload: BasePayload{
			Type:      EventTypeNotificationCreated,
			UserID:    env.userID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		NotificationID: "notif-1",
		Title:          "Task: Inbox sweep",
		Body:           "first event",
	})
	require.NoError(t, err)

	// Publish second event (conversation status)
	err = env.publisher.PublishConversationStatus(ctx, env.userID, ConversationStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeConversationStatus,
			UserID:    env.userID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		ConversationID: "conv-1",
		Status:         conversation.StatusBackground,
	})
	require.NoError(t, err)

	// Query persisted events via EventService
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Verify order and content
	assert.Equal(t, env.channel, events[0].Channel)
	assert.Equal(t, EventTypeNotificationCreated, events[0].Payload["type"])
	assert.Equal(t, "first event", events[0].Payload["body"])

	assert.Equal(t, EventTypeConversationStatus, events[1].Payload["type"])
	assert.Equal(t, "background", events[1].Payload["status"])
	assert.Equal(t, "conv-1", events[1].Payload["conversation_id"])

	// IDs should be incrementing
	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_TransientEventsNotPersisted(t *testing.T) {
	env := setupEventsTest(t)
	ctx := context.Background()

	// Publish transient event (activity ping)
	err := env.publisher.PublishConversationActivity(ctx, env.userID, ConversationActivityPayload{
		BasePayload: BasePayload{
			Type:      EventTypeConversationActivity,
			UserID:    env.userID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		ConversationID: "conv-1",
		Phase:          ActivityStarted,
	})
	require.NoError(t, err)

	// Query DB — should have zero persisted events
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted in DB")
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupEventsTest(t)
	ctx := context.Background()

	// Connect, subscribe, and wait for LISTEN to propagate
	conn := env.subscribeAndWait(t)

	// Publish a persistent event via Publisher
	err := env.publisher.PublishTaskStatus(ctx, env.userID, TaskStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeTaskStatus,
			UserID:    env.userID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		TaskID:         "task-ws-1",
		ConversationID: "conv-1",
		Name:           "Inbox sweep",
		Status:         task.StatusPaused,
		LastError:      "gmail: rate limited",
	})
	require.NoError(t, err)

	// Read from WebSocket — the event should arrive via pg_notify → listener → manager
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeTaskStatus, msg["type"])
	assert.Equal(t, "task-ws-1", msg["task_id"])
	assert.Equal(t, "paused", msg["status"])
	assert.Equal(t, env.userID, msg["user_id"])
	// db_event_id should be present (added by persistAndNotify after INSERT)
	assert.NotNil(t, msg["db_event_id"])
}

func TestIntegration_TransientEventDelivery(t *testing.T) {
	env := setupEventsTest(t)
	ctx := context.Background()

	// Connect, subscribe, wait for LISTEN
	conn := env.subscribeAndWait(t)

	// Publish transient event (no DB persistence)
	err := env.publisher.PublishConversationActivity(ctx, env.userID, ConversationActivityPayload{
		BasePayload: BasePayload{
			Type:      EventTypeConversationActivity,
			UserID:    env.userID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		ConversationID: "conv-stream-1",
		Phase:          ActivityStarted,
	})
	require.NoError(t, err)

	// Should arrive via WebSocket
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeConversationActivity, msg["type"])
	assert.Equal(t, "started", msg["phase"])

	// Verify nothing was persisted
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted")
}

func TestIntegration_NotificationSinkDelivery(t *testing.T) {
	// The notification service publishes through the NotificationCreated
	// hook. Verify a created row flows to a subscribed WebSocket client.
	env := setupEventsTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	notifService := services.NewNotificationService(env.dbClient.Client, env.publisher)
	notif, err := notifService.CreateNotification(ctx, models.CreateNotificationRequest{
		UserID: env.userID,
		Title:  "Task: Inbox sweep",
		Body:   "Archived 12 newsletters.",
	})
	require.NoError(t, err)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeNotificationCreated, msg["type"])
	assert.Equal(t, notif.ID, msg["notification_id"])
	assert.Equal(t, "Task: Inbox sweep", msg["title"])
	assert.Equal(t, "Archived 12 newsletters.", msg["body"])
	assert.Equal(t, env.userID, msg["user_id"])

	// The event row is also persisted for catchup
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, notif.ID, events[0].Payload["notification_id"])
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupEventsTest(t)
	ctx := context.Background()

	// Pre-populate DB with 3 persistent events
	for i := 1; i <= 3; i++ {
		err := env.publisher.PublishNotificationCreated(ctx, env.userID, NotificationCreatedPayload{
			BasePayload: BasePayload{
				Type:      EventTypeNotificationCreated,
				UserID:    env.userID,
				Timestamp: time.Now().Format(time.RFC3339Nano),
			},
			NotificationID: uuid.New().String(),
			Title:          "seeded",
			Body:           string(rune('0' + i)),
		})
		require.NoError(t, err)
	}

	// Verify events exist in DB
	allEvents, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allEvents, 3)
	firstEventID := allEvents[0].ID

	// Connect a NEW WebSocket client (simulates reconnection)
	conn := env.connectWS(t)
	msg := readJSONTimeout(t, conn, 5*time.Second) // connection.established
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe — auto-catchup delivers all 3 prior events immediately
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))
	msg = readJSONTimeout(t, conn, 5*time.Second) // subscription.confirmed
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Read all 3 auto-catchup events in order
	for i := 1; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeNotificationCreated, msg["type"])
		assert.Equal(t, string(rune('0'+i)), msg["body"])
	}

	// Explicit catchup from the first event's ID — should return only events 2 and 3
	catchupFrom := firstEventID
	catchupMsg, _ := json.Marshal(ClientMessage{
		Action:      "catchup",
		Channel:     env.channel,
		LastEventID: &catchupFrom,
	})
	writeCtx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	require.NoError(t, conn.Write(writeCtx2, websocket.MessageText, catchupMsg))

	for i := 2; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, string(rune('0'+i)), msg["body"])
	}

	// No more messages — verify with short timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err = conn.Read(readCtx)
	assert.Error(t, err, "should not receive more messages after catchup")
}
