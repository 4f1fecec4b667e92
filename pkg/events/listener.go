package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

// waitSlice is how long one WaitForNotification call may block before the
// receive loop comes back around to drain pending LISTEN/UNLISTEN work.
const waitSlice = 100 * time.Millisecond

// redial backoff bounds.
const (
	redialInitialBackoff = time.Second
	redialMaxBackoff     = 30 * time.Second
)

// connOp is a LISTEN or UNLISTEN statement queued for the receive loop. The
// loop is the only goroutine allowed to touch the pgx connection; running
// Exec concurrently with WaitForNotification trips pgx's "conn busy" guard.
type connOp struct {
	stmt string
	done chan error
}

// NotifyListener owns a dedicated Postgres connection, keeps a LISTEN active
// for every channel with at least one local subscriber, and hands received
// notifications to the ConnectionManager for fanout.
type NotifyListener struct {
	connString string
	manager    *ConnectionManager

	conn *pgx.Conn
	mu   sync.Mutex

	// channels records which LISTENs are currently active, so Subscribe is
	// idempotent and redial knows what to re-establish.
	channels map[string]bool
	chanMu   sync.RWMutex

	ops     chan connOp
	running atomic.Bool

	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewNotifyListener builds a listener; Start must be called before Subscribe.
func NewNotifyListener(connString string, manager *ConnectionManager) *NotifyListener {
	return &NotifyListener{
		connString: connString,
		manager:    manager,
		channels:   make(map[string]bool),
		ops:        make(chan connOp, 16),
	}
}

// Start dials the dedicated connection and launches the receive loop.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}

	l.mu.Lock()
	l.conn = conn
	l.mu.Unlock()

	l.running.Store(true)

	// The loop gets its own cancellable context so Stop can halt it before
	// the connection is closed out from under it.
	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.run(loopCtx)
	}()

	slog.Info("NotifyListener started")
	return nil
}

// Subscribe activates LISTEN for a channel. Safe to call repeatedly.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	l.chanMu.Lock()
	active := l.channels[channel]
	l.chanMu.Unlock()
	if active {
		return nil
	}

	if !l.running.Load() {
		return fmt.Errorf("LISTEN connection not established")
	}

	ident := pgx.Identifier{channel}.Sanitize()
	if err := l.exec(ctx, "LISTEN "+ident); err != nil {
		return fmt.Errorf("LISTEN %s failed: %w", ident, err)
	}

	l.chanMu.Lock()
	l.channels[channel] = true
	l.chanMu.Unlock()
	slog.Debug("Subscribed to NOTIFY channel", "channel", channel)
	return nil
}

// Unsubscribe drops the LISTEN for a channel. A channel that was never
// subscribed, or a listener that never started, is a no-op.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	l.chanMu.Lock()
	active := l.channels[channel]
	l.chanMu.Unlock()
	if !active || !l.running.Load() {
		return nil
	}

	ident := pgx.Identifier{channel}.Sanitize()
	if err := l.exec(ctx, "UNLISTEN "+ident); err != nil {
		return fmt.Errorf("UNLISTEN %s failed: %w", ident, err)
	}

	l.chanMu.Lock()
	delete(l.channels, channel)
	l.chanMu.Unlock()
	return nil
}

// isListening is a test hook so tests can poll instead of sleeping.
func (l *NotifyListener) isListening(channel string) bool {
	l.chanMu.RLock()
	defer l.chanMu.RUnlock()
	return l.channels[channel]
}

// exec queues a statement for the receive loop and waits for its result.
func (l *NotifyListener) exec(ctx context.Context, stmt string) error {
	op := connOp{stmt: stmt, done: make(chan error, 1)}

	select {
	case l.ops <- op:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-op.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run alternates between draining queued LISTEN/UNLISTEN statements and
// waiting (briefly) for a notification, so one goroutine serializes all use
// of the connection. A receive error hands off to redial.
func (l *NotifyListener) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.drainOps(ctx)

		l.mu.Lock()
		conn := l.conn
		l.mu.Unlock()

		if conn == nil {
			l.redial(ctx)
			continue
		}

		waitCtx, cancel := context.WithTimeout(ctx, waitSlice)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				// Just the slice expiring; go drain ops.
				continue
			}
			slog.Error("NOTIFY receive error", "error", err)
			l.redial(ctx)
			continue
		}

		l.manager.Broadcast(notification.Channel, []byte(notification.Payload))
	}
}

// drainOps runs every queued statement without blocking.
func (l *NotifyListener) drainOps(ctx context.Context) {
	for {
		select {
		case op := <-l.ops:
			l.mu.Lock()
			conn := l.conn
			l.mu.Unlock()

			if conn == nil {
				op.done <- fmt.Errorf("LISTEN connection not established")
				continue
			}
			_, err := conn.Exec(ctx, op.stmt)
			op.done <- err
		default:
			return
		}
	}
}

// redial replaces a dead connection, backing off between attempts, and
// re-issues LISTEN for every channel that was active before the drop.
func (l *NotifyListener) redial(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := redialInitialBackoff
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, redialMaxBackoff)
			continue
		}
		l.conn = conn

		l.chanMu.RLock()
		for ch := range l.channels {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
				slog.Error("Re-LISTEN failed", "channel", ch, "error", err)
			}
		}
		l.chanMu.RUnlock()

		slog.Info("NotifyListener reconnected")
		return
	}
}

// Stop halts the receive loop, waits for it, then closes the connection.
// Ordering matters: WaitForNotification must not race conn.Close.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.running.Store(false)

	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
