package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit caps how many stored events a single replay may deliver. A
// client that missed more than this gets a catchup.overflow marker and is
// expected to reload state over REST instead of paginating replays.
const catchupLimit = 200

// listenTimeout bounds the synchronous LISTEN issued for a channel's first
// subscriber. A stalled database connection must not wedge the client's read
// loop forever.
const listenTimeout = 10 * time.Second

// CatchupEvent is one stored event row handed back by the replay query.
type CatchupEvent struct {
	ID      int
	Payload map[string]interface{}
}

// CatchupQuerier loads stored events newer than a cursor for one channel.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// wsClient is one accepted WebSocket. Its channels set is touched only by the
// goroutine running handleSocket (the read loop and its deferred cleanup), so
// it carries no lock. Any future cross-goroutine mutation needs one.
type wsClient struct {
	id           string
	sock         *websocket.Conn
	channels     map[string]struct{}
	ctx          context.Context
	cancel       context.CancelFunc
	writeTimeout time.Duration
}

// write pushes raw bytes with the per-write deadline applied.
func (c *wsClient) write(data []byte) error {
	ctx, cancel := context.WithTimeout(c.ctx, c.writeTimeout)
	defer cancel()
	return c.sock.Write(ctx, websocket.MessageText, data)
}

// writeJSON marshals v and writes it, logging rather than surfacing failures.
func (c *wsClient) writeJSON(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message", "connection_id", c.id, "error", err)
		return
	}
	if err := c.write(data); err != nil {
		slog.Warn("Failed to send WebSocket message", "connection_id", c.id, "error", err)
	}
}

// ConnectionManager tracks every live WebSocket in this process and fans
// stored/notified events out to the clients subscribed to each channel.
type ConnectionManager struct {
	mu      sync.RWMutex
	clients map[*wsClient]struct{}

	// subMu guards subs, the channel → subscriber-set index Broadcast reads.
	subMu sync.RWMutex
	subs  map[string]map[*wsClient]struct{}

	catchupQuerier CatchupQuerier

	// listener is wired in after construction; nil until SetListener.
	listener   *NotifyListener
	listenerMu sync.RWMutex

	writeTimeout time.Duration
}

// NewConnectionManager builds a manager with no listener attached yet.
func NewConnectionManager(catchupQuerier CatchupQuerier, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		clients:        make(map[*wsClient]struct{}),
		subs:           make(map[string]map[*wsClient]struct{}),
		catchupQuerier: catchupQuerier,
		writeTimeout:   writeTimeout,
	}
}

// SetListener attaches the NOTIFY listener used for dynamic LISTEN/UNLISTEN.
// Called once at startup, after both halves exist.
func (m *ConnectionManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// HandleConnection owns an upgraded WebSocket until it closes. The HTTP
// handler calls this and blocks for the connection's lifetime.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, sock *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &wsClient{
		id:           uuid.New().String(),
		sock:         sock,
		channels:     make(map[string]struct{}),
		ctx:          ctx,
		cancel:       cancel,
		writeTimeout: m.writeTimeout,
	}

	m.attach(c)
	defer m.detach(c)

	c.writeJSON(map[string]string{
		"type":          "connection.established",
		"connection_id": c.id,
	})

	for {
		_, data, err := sock.Read(ctx)
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", c.id, "error", err)
			continue
		}
		m.dispatch(ctx, c, &msg)
	}
}

// dispatch routes one decoded client message.
func (m *ConnectionManager) dispatch(ctx context.Context, c *wsClient, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if !requireChannel(c, msg, "subscribe") {
			return
		}
		if err := m.joinChannel(c, msg.Channel); err != nil {
			c.writeJSON(map[string]string{
				"type":    "subscription.error",
				"channel": msg.Channel,
				"message": "failed to subscribe to channel",
			})
			return
		}
		c.writeJSON(map[string]string{
			"type":    "subscription.confirmed",
			"channel": msg.Channel,
		})
		// Replay everything stored for the channel so a late subscriber
		// starts with a complete picture.
		m.replay(ctx, c, msg.Channel, 0)

	case "unsubscribe":
		if !requireChannel(c, msg, "unsubscribe") {
			return
		}
		m.leaveChannel(c, msg.Channel)

	case "catchup":
		if !requireChannel(c, msg, "catchup") {
			return
		}
		if msg.LastEventID != nil {
			m.replay(ctx, c, msg.Channel, *msg.LastEventID)
		}

	case "ping":
		c.writeJSON(map[string]string{"type": "pong"})
	}
}

// requireChannel rejects actions missing a channel, keeping the socket open.
func requireChannel(c *wsClient, msg *ClientMessage, action string) bool {
	if msg.Channel != "" {
		return true
	}
	c.writeJSON(map[string]string{
		"type":    "error",
		"message": "channel is required for " + action,
	})
	return false
}

// joinChannel adds the client to a channel's subscriber set. The channel's
// first subscriber triggers a synchronous LISTEN: it must complete before
// this returns, so the replay that follows runs with LISTEN already active
// and no event can fall in the gap between the two. A LISTEN failure is
// returned so the caller reports subscription.error instead of a false
// confirmation.
func (m *ConnectionManager) joinChannel(c *wsClient, channel string) error {
	m.subMu.Lock()
	set, known := m.subs[channel]
	if !known {
		set = make(map[*wsClient]struct{})
		m.subs[channel] = set
	}
	set[c] = struct{}{}
	m.subMu.Unlock()

	if !known {
		if l := m.notifyListener(); l != nil {
			ctx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			defer cancel()
			if err := l.Subscribe(ctx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				m.tearDownChannel(c, channel)
				return fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	c.channels[channel] = struct{}{}
	return nil
}

// tearDownChannel drops a channel whose LISTEN never came up and tells every
// subscriber other than the triggering client (the caller reports to that one
// via the returned error).
//
// The window matters: while the first subscriber's LISTEN was in flight,
// other clients could join the same channel, see it already present, skip
// LISTEN, and get a confirmation. Those clients now believe they are
// subscribed to a channel that receives nothing. They may have observed
// subscription.confirmed and replayed events before the subscription.error
// arrives; the error is authoritative and they must drop what they got and
// retry or fall back to polling.
//
// A stale entry may linger in each client's own channels set. Broadcast goes
// through m.subs (now gone) and leaveChannel tolerates unknown channels, so
// it is harmless.
func (m *ConnectionManager) tearDownChannel(triggering *wsClient, channel string) {
	m.subMu.Lock()
	orphaned := make([]*wsClient, 0, len(m.subs[channel]))
	for sub := range m.subs[channel] {
		if sub != triggering {
			orphaned = append(orphaned, sub)
		}
	}
	delete(m.subs, channel)
	m.subMu.Unlock()

	for _, sub := range orphaned {
		slog.Warn("Removing orphaned subscriber after LISTEN failure",
			"connection_id", sub.id, "channel", channel)
		sub.writeJSON(map[string]string{
			"type":    "subscription.error",
			"channel": channel,
			"message": "channel listen failed; subscription removed",
		})
	}
}

// leaveChannel removes the client from a channel. When the last subscriber
// leaves, UNLISTEN is deferred to a goroutine that re-checks the subscriber
// index first: clients remount views constantly, and an unsubscribe followed
// at once by a resubscribe must not end with the LISTEN torn down under the
// new subscriber.
func (m *ConnectionManager) leaveChannel(c *wsClient, channel string) {
	m.subMu.Lock()
	if set, ok := m.subs[channel]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(m.subs, channel)
			if l := m.notifyListener(); l != nil {
				go func() {
					m.subMu.RLock()
					_, resubscribed := m.subs[channel]
					m.subMu.RUnlock()
					if resubscribed {
						return
					}
					if err := l.Unsubscribe(context.Background(), channel); err != nil {
						slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
					}
				}()
			}
		}
	}
	m.subMu.Unlock()

	delete(c.channels, channel)
}

// replay streams stored events newer than sinceID to one client, oldest
// first. The stored payload carries no row ID (that is only stamped onto the
// NOTIFY copy at publish time), so the row ID is injected here as db_event_id
// for the client's cursor. One extra row is fetched to detect overflow.
func (m *ConnectionManager) replay(ctx context.Context, c *wsClient, channel string, sinceID int) {
	if m.catchupQuerier == nil {
		return
	}

	stored, err := m.catchupQuerier.GetCatchupEvents(ctx, channel, sinceID, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}

	truncated := len(stored) > catchupLimit
	if truncated {
		stored = stored[:catchupLimit]
	}

	for _, evt := range stored {
		evt.Payload["db_event_id"] = evt.ID
		data, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		if err := c.write(data); err != nil {
			slog.Warn("Failed to send catchup event", "connection_id", c.id, "error", err)
			return
		}
	}

	if truncated {
		c.writeJSON(map[string]interface{}{
			"type":     "catchup.overflow",
			"channel":  channel,
			"has_more": true,
		})
	}
}

// Broadcast delivers an event to every subscriber of a channel. The
// subscriber set is snapshotted first so slow writes (up to writeTimeout
// each) never run under the lock.
func (m *ConnectionManager) Broadcast(channel string, event []byte) {
	m.subMu.RLock()
	set, ok := m.subs[channel]
	if !ok {
		m.subMu.RUnlock()
		return
	}
	targets := make([]*wsClient, 0, len(set))
	for sub := range set {
		targets = append(targets, sub)
	}
	m.subMu.RUnlock()

	for _, sub := range targets {
		if err := sub.write(event); err != nil {
			slog.Warn("Failed to send to WebSocket client",
				"connection_id", sub.id, "error", err)
		}
	}
}

// ActiveConnections reports how many sockets this process currently holds.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

// subscriberCount is a test hook so tests can poll instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.subMu.RLock()
	defer m.subMu.RUnlock()
	return len(m.subs[channel])
}

func (m *ConnectionManager) notifyListener() *NotifyListener {
	m.listenerMu.RLock()
	defer m.listenerMu.RUnlock()
	return m.listener
}

func (m *ConnectionManager) attach(c *wsClient) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[c] = struct{}{}
}

func (m *ConnectionManager) detach(c *wsClient) {
	for ch := range c.channels {
		m.leaveChannel(c, ch)
	}

	m.mu.Lock()
	delete(m.clients, c)
	m.mu.Unlock()

	c.cancel()
	_ = c.sock.Close(websocket.StatusNormalClosure, "")
}
