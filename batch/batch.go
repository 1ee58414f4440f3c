// Copyright (C) 2026 The nen-io Authors. All Rights Reserved.

// Package batch implements a write queue gated on structural validation.
// A document enters the queue only after a fresh validation run accepts
// it; the queue holds a fixed number of pending documents and flushes them
// to a sink as newline-delimited JSON.
package batch

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	nenio "github.com/Nen-Co/nen-io"
)

// ErrDuplicate reports that an identical document is already pending.
var ErrDuplicate = errors.New("duplicate document pending")

// defaultDocument is stored in place of recoverable no-content inputs.
const defaultDocument = "{}"

// An Entry is one accepted document awaiting flush.
type Entry struct {
	ID     uuid.UUID // assigned at admission
	Digest uint64    // xxhash of the stored document
	Data   []byte
}

// A Queue admits validated documents up to a fixed capacity. The backing
// array is allocated once at construction and never grows; when the queue
// fills it flushes to the sink and starts over. A Queue is safe for
// concurrent use.
type Queue struct {
	w      io.Writer
	limits nenio.Limits

	mu      sync.Mutex
	entries []Entry // length is the fixed capacity
	n       int     // entries currently pending
}

// NewQueue constructs a queue over sink w holding at most capacity
// documents between flushes. Every admitted document is validated against
// limits first.
func NewQueue(w io.Writer, capacity int, limits nenio.Limits) (*Queue, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("capacity must be positive, got %d", capacity)
	}
	if err := limits.Check(); err != nil {
		return nil, fmt.Errorf("invalid limits: %w", err)
	}
	return &Queue{w: w, limits: limits, entries: make([]Entry, capacity)}, nil
}

// Add validates doc and, if it is accepted, admits it to the queue and
// returns its id. Recoverable verdicts (empty or whitespace-only input)
// admit the default document "{}" instead; structural failures reject the
// document with the *nenio.Error. A document whose digest is already
// pending is rejected with ErrDuplicate. Filling the last slot triggers a
// flush.
func (q *Queue) Add(doc []byte) (uuid.UUID, error) {
	res, err := nenio.ValidateBytes(doc, q.limits)
	if err != nil {
		return uuid.Nil, err
	}
	if !res.Valid {
		if !res.Err.Kind.Recoverable() {
			return uuid.Nil, res.Err
		}
		doc = []byte(defaultDocument)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	sum := xxhash.Sum64(doc)
	for i := 0; i < q.n; i++ {
		if q.entries[i].Digest == sum {
			return uuid.Nil, ErrDuplicate
		}
	}
	id := uuid.New()
	q.entries[q.n] = Entry{ID: id, Digest: sum, Data: append([]byte(nil), doc...)}
	q.n++
	if q.n == len(q.entries) {
		if err := q.flushLocked(); err != nil {
			return id, err
		}
	}
	return id, nil
}

// Flush writes all pending documents to the sink, one per line, and
// empties the queue. If the sink fails mid-flush, the documents already
// delivered are removed and the rest remain pending for a later Flush.
func (q *Queue) Flush() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.flushLocked()
}

func (q *Queue) flushLocked() error {
	written := 0
	for written < q.n {
		e := q.entries[written]
		// One write per entry keeps the entry atomic at the sink: the
		// document and its delimiter land together, or the entry stays
		// pending for the next flush.
		line := append(append(make([]byte, 0, len(e.Data)+1), e.Data...), '\n')
		if _, err := q.w.Write(line); err != nil {
			// Slide the unwritten tail to the front so the pending state
			// stays consistent: a retry flushes exactly the remainder and
			// Len reports it.
			rest := copy(q.entries, q.entries[written:q.n])
			for i := rest; i < q.n; i++ {
				q.entries[i] = Entry{}
			}
			q.n = rest
			return fmt.Errorf("flush batch: %w", err)
		}
		written++
	}
	for i := 0; i < q.n; i++ {
		q.entries[i] = Entry{}
	}
	q.n = 0
	return nil
}

// Len reports the number of pending documents.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.n
}

// Cap reports the fixed capacity of the queue.
func (q *Queue) Cap() int { return len(q.entries) }
