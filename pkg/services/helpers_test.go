package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/pkg/database"
	"github.com/stretchr/testify/require"
)

// createTestConversation inserts a bare active conversation for tests
// that need one to hang messages, tasks, or notifications off.
func createTestConversation(t *testing.T, client *database.Client, userID string) *ent.Conversation {
	t.Helper()

	conv, err := client.Conversation.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		Save(context.Background())
	require.NoError(t, err)
	return conv
}

// captureSink records published notification events for assertions.
type captureSink struct {
	users  []string
	notifs []*ent.Notification
	err    error
}

func (c *captureSink) NotificationCreated(_ context.Context, userID string, n *ent.Notification) error {
	if c.err != nil {
		return c.err
	}
	c.users = append(c.users, userID)
	c.notifs = append(c.notifs, n)
	return nil
}
