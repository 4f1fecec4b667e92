package database

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/ent/conversation"
	"github.com/majordomo-io/majordomo/ent/message"
	"github.com/majordomo-io/majordomo/ent/task"
)

// testConnString returns a PostgreSQL connection string with CI/local
// environment detection.
// In CI (when CI_DATABASE_URL is set): connects to the external
// PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
func testConnString(t *testing.T) string {
	ctx := context.Background()

	if ciDatabaseURL := os.Getenv("CI_DATABASE_URL"); ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		return ciDatabaseURL
	}

	t.Log("Using testcontainers for PostgreSQL")
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return connStr
}

// newTestClient opens a client through the production path so tests run
// the embedded migrations rather than Ent auto-migration. This keeps
// the SQL under migrations/ honest against ent/schema.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	cfg := Config{
		URL:          testConnString(t),
		Database:     "test",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	}

	client, err := NewClient(ctx, cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)

	// Durations are reported in milliseconds, not nanoseconds.
	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]interface{}
	require.NoError(t, json.Unmarshal(jsonBytes, &jsonData))

	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.GreaterOrEqual(t, responseTime, float64(0))
	assert.Less(t, responseTime, float64(1000000), "response_time_ms should be in milliseconds, not nanoseconds")
}

func TestMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()

	cfg := Config{
		URL:          testConnString(t),
		Database:     "test",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	}

	first, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// A second startup against the same database must tolerate the
	// already-applied migrations.
	second, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	defer second.Close()

	require.NoError(t, second.DB().PingContext(ctx))
}

func TestConversationRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	nextRun := time.Now().UTC().Add(5 * time.Minute)
	convID := uuid.NewString()

	conv, err := client.Conversation.Create().
		SetID(convID).
		SetUserID("user-1").
		SetTitle("Morning briefing").
		SetStatus(conversation.StatusBackground).
		SetScheduleType(conversation.ScheduleTypeCron).
		SetCronExpression("0 7 * * *").
		SetNextRunAt(nextRun).
		SetStateContext(map[string]interface{}{"goal": "daily summary"}).
		SetStateStep("collect").
		SetStateData(map[string]interface{}{"sources": []interface{}{"gmail"}}).
		SetSkills([]string{"research", "summarize"}).
		Save(ctx)
	require.NoError(t, err)

	for i, content := range []string{"first", "second", "third"} {
		_, err := client.Message.Create().
			SetID(uuid.NewString()).
			SetConversationID(convID).
			SetRole(message.RoleUser).
			SetContent(content).
			SetSource(message.SourceChat).
			SetCreatedAt(time.Now().UTC().Add(time.Duration(i) * time.Millisecond)).
			Save(ctx)
		require.NoError(t, err)
	}

	got, err := client.Conversation.Query().
		Where(conversation.IDEQ(convID)).
		WithMessages(func(q *ent.MessageQuery) {
			q.Order(ent.Asc(message.FieldCreatedAt))
		}).
		Only(ctx)
	require.NoError(t, err)

	assert.Equal(t, conversation.StatusBackground, got.Status)
	assert.Equal(t, "0 7 * * *", got.CronExpression)
	assert.Equal(t, "collect", got.StateStep)
	assert.Equal(t, "daily summary", got.StateContext["goal"])
	assert.Equal(t, []string{"research", "summarize"}, got.Skills)
	require.NotNil(t, got.NextRunAt)
	assert.WithinDuration(t, nextRun, *got.NextRunAt, time.Second)

	require.Len(t, got.Edges.Messages, 3)
	assert.Equal(t, "first", got.Edges.Messages[0].Content)
	assert.Equal(t, "third", got.Edges.Messages[2].Content)

	// Parking the conversation on a question clears the schedule.
	updated, err := client.Conversation.UpdateOne(conv).
		SetStatus(conversation.StatusWaitingInput).
		SetPendingQuestionType(conversation.PendingQuestionTypeChoice).
		SetPendingQuestionPrompt("Which account?").
		SetPendingQuestionOptions([]string{"work", "personal"}).
		ClearNextRunAt().
		Save(ctx)
	require.NoError(t, err)

	assert.Equal(t, conversation.StatusWaitingInput, updated.Status)
	assert.Equal(t, []string{"work", "personal"}, updated.PendingQuestionOptions)
	assert.Nil(t, updated.NextRunAt)
}

func TestTaskLookup_CaseInsensitive(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	convID := uuid.NewString()
	_, err := client.Conversation.Create().
		SetID(convID).
		SetUserID("user-1").
		Save(ctx)
	require.NoError(t, err)

	interval := 30
	created, err := client.Task.Create().
		SetID(uuid.NewString()).
		SetConversationID(convID).
		SetUserID("user-1").
		SetName("Check Inbox").
		SetIntervalValue(interval).
		SetIntervalUnit(task.IntervalUnitMinutes).
		SetNextRunAt(time.Now().UTC()).
		Save(ctx)
	require.NoError(t, err)

	// The expression index backs case-insensitive name lookup.
	rows, err := client.DB().QueryContext(ctx,
		`SELECT task_id FROM tasks WHERE conversation_id = $1 AND lower(name) = lower($2)`,
		convID, "check inbox",
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var taskID string
		require.NoError(t, rows.Scan(&taskID))
		results = append(results, taskID)
	}
	require.NoError(t, rows.Err())

	require.Len(t, results, 1)
	assert.Equal(t, created.ID, results[0])

	// Due-task predicate used by the scheduler claim path.
	due, err := client.Task.Query().
		Where(
			task.StatusEQ(task.StatusActive),
			task.NextRunAtLTE(time.Now().UTC().Add(time.Minute)),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, due)
}

func TestConversationDelete_Cascades(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	convID := uuid.NewString()
	_, err := client.Conversation.Create().
		SetID(convID).
		SetUserID("user-1").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Message.Create().
		SetID(uuid.NewString()).
		SetConversationID(convID).
		SetRole(message.RoleAssistant).
		SetContent("done").
		Save(ctx)
	require.NoError(t, err)

	interval := 1
	_, err = client.Task.Create().
		SetID(uuid.NewString()).
		SetConversationID(convID).
		SetUserID("user-1").
		SetName("cleanup probe").
		SetIntervalValue(interval).
		SetIntervalUnit(task.IntervalUnitHours).
		Save(ctx)
	require.NoError(t, err)

	notifID := uuid.NewString()
	_, err = client.Notification.Create().
		SetID(notifID).
		SetUserID("user-1").
		SetConversationID(convID).
		SetTitle("Task: cleanup probe").
		SetBody("done").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, client.Conversation.DeleteOneID(convID).Exec(ctx))

	msgCount, err := client.Message.Query().Where(message.ConversationID(convID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, msgCount, "messages should cascade")

	taskCount, err := client.Task.Query().Where(task.ConversationID(convID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, taskCount, "tasks should cascade")

	// Notifications survive with the conversation reference nulled.
	notif, err := client.Notification.Get(ctx, notifID)
	require.NoError(t, err)
	assert.Empty(t, notif.ConversationID)
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, "majordomo", cfg.User)
				assert.Equal(t, "majordomo", cfg.Database)
				assert.Equal(t, 10, cfg.MaxOpenConns)
				assert.Equal(t, 5, cfg.MaxIdleConns)
			},
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "db.example.com", cfg.Host)
				assert.Equal(t, 5433, cfg.Port)
				assert.Equal(t, "require", cfg.SSLMode)
				assert.Equal(t, 50, cfg.MaxOpenConns)
			},
		},
		{
			name: "database url wins",
			envVars: map[string]string{
				"DATABASE_URL": "postgres://app:pw@db:5432/majordomo?sslmode=disable",
				"DB_HOST":      "ignored.example.com",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "postgres://app:pw@db:5432/majordomo?sslmode=disable", cfg.DSN())
			},
		},
		{
			name: "invalid DB_PORT",
			envVars: map[string]string{
				"DB_PORT": "invalid",
			},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
	}

	envKeys := []string{
		"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_SSLMODE", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
			for key, val := range tt.envVars {
				os.Setenv(key, val)
			}
			t.Cleanup(func() {
				for _, key := range envKeys {
					os.Unsetenv(key)
				}
			})

			cfg, err := LoadConfigFromEnv()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		Port:     5432,
		User:     "majordomo",
		Password: "pw",
		Database: "majordomo",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=majordomo password=pw dbname=majordomo sslmode=disable",
		cfg.DSN(),
	)

	cfg.URL = "postgres://u:p@h:5432/d"
	assert.Equal(t, "postgres://u:p@h:5432/d", cfg.DSN())
}
