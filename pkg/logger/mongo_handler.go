// Package logger — mongo_handler.go
//
// ActivityHandler is an slog.Handler that asynchronously stores log
// records in a MongoDB collection, giving the tool a persistent trail of
// every catalog change, order and shipment next to the data itself.
//
//   - Writes are enqueued into a buffered channel (non-blocking).
//   - A single background goroutine drains the channel and performs
//     InsertMany in batches.
//   - If the channel is full, the record is dropped; logging must never
//     block an operation.
//   - Graceful shutdown: call Close() to flush.
package logger

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	activityQueueSize = 1024
	activityBatchSize = 25
	activityDrainTick = 2 * time.Second
)

// ActivityDocument is the shape written to the activity-log collection.
type ActivityDocument struct {
	Time  time.Time `bson:"time"`
	Level string    `bson:"level"`
	Msg   string    `bson:"msg"`
	Attrs bson.M    `bson:"attrs,omitempty"`
}

// ActivityHandler is a slog.Handler that writes to MongoDB asynchronously.
type ActivityHandler struct {
	col   *mongo.Collection
	queue chan ActivityDocument
	done  chan struct{}
	attrs []slog.Attr
}

// NewActivityHandler creates an ActivityHandler over an already-connected
// collection (the handler shares the tool's database connection rather
// than opening its own). The caller must eventually call Close().
func NewActivityHandler(col *mongo.Collection) *ActivityHandler {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Time index so the trail can be queried and aged out.
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "time", Value: -1}},
		Options: options.Index(),
	})

	h := &ActivityHandler{
		col:   col,
		queue: make(chan ActivityDocument, activityQueueSize),
		done:  make(chan struct{}),
	}

	go h.drainLoop()
	return h
}

// ─── slog.Handler interface ───────────────────────────────────────────────────

func (h *ActivityHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= slog.LevelInfo
}

func (h *ActivityHandler) Handle(_ context.Context, r slog.Record) error {
	doc := ActivityDocument{
		Time:  r.Time,
		Level: r.Level.String(),
		Msg:   r.Message,
		Attrs: bson.M{},
	}

	for _, a := range h.attrs {
		doc.Attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		doc.Attrs[a.Key] = a.Value.Any()
		return true
	})

	// Non-blocking enqueue: drop if channel is full.
	select {
	case h.queue <- doc:
	default:
	}
	return nil
}

func (h *ActivityHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)
	return &ActivityHandler{
		col:   h.col,
		queue: h.queue,
		done:  h.done,
		attrs: newAttrs,
	}
}

func (h *ActivityHandler) WithGroup(_ string) slog.Handler {
	// Groups are flattened into attrs; the activity trail is queried by
	// key, not by group path.
	return h
}

// ─── Internals ────────────────────────────────────────────────────────────────

// drainLoop runs in the background, flushing queued documents into MongoDB.
func (h *ActivityHandler) drainLoop() {
	ticker := time.NewTicker(activityDrainTick)
	defer ticker.Stop()

	batch := make([]interface{}, 0, activityBatchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, _ = h.col.InsertMany(ctx, batch) // errors are intentionally ignored
		batch = batch[:0]
	}

	for {
		select {
		case doc := <-h.queue:
			batch = append(batch, doc)
			if len(batch) >= activityBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-h.done:
			for len(h.queue) > 0 {
				batch = append(batch, <-h.queue)
			}
			flush()
			return
		}
	}
}

// Close flushes pending records. Safe to call multiple times. The
// shared database connection is closed by its owner, not here.
func (h *ActivityHandler) Close() {
	select {
	case <-h.done:
	default:
		close(h.done)
	}
}

// ─── Multi-handler fan-out ────────────────────────────────────────────────────

// MultiHandler fans out to multiple slog.Handlers.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler returns a handler that sends each record to all hs.
func NewMultiHandler(hs ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: hs}
}

func (m *MultiHandler) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

func (m *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}
	return nil
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	hs := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		hs[i] = h.WithAttrs(attrs)
	}
	return &MultiHandler{handlers: hs}
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	hs := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		hs[i] = h.WithGroup(name)
	}
	return &MultiHandler{handlers: hs}
}
