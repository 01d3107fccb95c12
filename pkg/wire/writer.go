// Package wire implements the Protocol Writers named in spec.md §4.11: a
// thin framed writer for infrequent control messages, a direct writer atop
// a pooled buffer for the DataRow/CommandComplete/ReadyForQuery hot path,
// and a batching writer that coalesces a burst of small Extended Query
// response messages into one socket write.
package wire

import (
	"io"

	"github.com/jackc/pgx/v5/pgproto3"
	"github.com/pgsqlite/pgsqlite/pkg/buffer"
)

// FramedWriter sends one message at a time through the backend's own
// framing, with no batching of its own. Intended for paths where a message
// is sent in isolation and there's nothing to gain from buffering it
// alongside others — startup/auth messages, NegotiateProtocolVersion, and
// the like.
type FramedWriter struct {
	backend *pgproto3.Backend
}

func NewFramedWriter(backend *pgproto3.Backend) *FramedWriter {
	return &FramedWriter{backend: backend}
}

func (w *FramedWriter) Send(msg pgproto3.BackendMessage) error {
	return w.backend.Send(msg)
}

// DirectWriter encodes a fixed batch of messages into one buffer drawn from
// pool and issues a single Write, releasing the buffer back once done.
// This is pkg/pgwire/utils.go's writeMessages/encodeRowsNew pattern,
// generalized so other callers can reuse it without depending on pgwire.
type DirectWriter struct {
	out  io.Writer
	pool *buffer.Pool
}

func NewDirectWriter(out io.Writer, pool *buffer.Pool) *DirectWriter {
	return &DirectWriter{out: out, pool: pool}
}

func (w *DirectWriter) SendAll(msgs ...pgproto3.Message) error {
	buf := w.pool.Acquire(64)
	defer func() { w.pool.Release(buf) }()

	for _, msg := range msgs {
		buf, _ = msg.Encode(buf)
	}
	_, err := w.out.Write(buf)
	return err
}

const (
	flushBytes    = 8 * 1024
	flushMessages = 100
)

// BatchingWriter accumulates encoded messages into a pooled buffer across
// multiple Send calls, flushing once the buffer reaches flushBytes or
// flushMessages messages have queued up, or immediately when a message
// that must reach the client before anything else waits behind it is
// sent (ReadyForQuery, ErrorResponse, PortalSuspended — each marks a
// point the client blocks on a reply). Callers that don't hit one of
// those message types must call Flush themselves once a logical unit of
// work (a Describe, a burst of Execute results) is complete.
type BatchingWriter struct {
	out   io.Writer
	pool  *buffer.Pool
	buf   []byte
	count int
}

func NewBatchingWriter(out io.Writer, pool *buffer.Pool) *BatchingWriter {
	return &BatchingWriter{out: out, pool: pool}
}

func mustFlushImmediately(msg pgproto3.Message) bool {
	switch msg.(type) {
	case *pgproto3.ReadyForQuery, *pgproto3.ErrorResponse, *pgproto3.PortalSuspended:
		return true
	default:
		return false
	}
}

func (w *BatchingWriter) Send(msg pgproto3.Message) error {
	if w.buf == nil {
		w.buf = w.pool.Acquire(256)
	}
	w.buf, _ = msg.Encode(w.buf)
	w.count++

	if mustFlushImmediately(msg) || len(w.buf) >= flushBytes || w.count >= flushMessages {
		return w.Flush()
	}
	return nil
}

// Flush writes out whatever has accumulated and returns the buffer to the
// pool. A no-op if nothing is pending.
func (w *BatchingWriter) Flush() error {
	if len(w.buf) == 0 {
		return nil
	}
	buf := w.buf
	w.buf = nil
	w.count = 0

	_, err := w.out.Write(buf)
	w.pool.Release(buf)
	return err
}
