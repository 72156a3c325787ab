package state

import (
	"context"
	"errors"
	"sync"
	"time"

	"nathanbeddoewebdev/hirectl/internal/domain"

	"go.uber.org/zap"
)

// ErrSuperseded is returned to the caller of an operation whose result
// was dropped because a newer operation of the same kind started.
var ErrSuperseded = errors.New("superseded by a newer request")

// Snapshot is an immutable view of a slice. Data is replaced wholesale on
// every commit, never mutated in place, so a shallow copy is safe to
// share.
type Snapshot[T any] struct {
	Loading   bool
	Error     string
	Data      T
	UpdatedAt time.Time
}

type inflight struct {
	gen    uint64
	cancel context.CancelFunc
}

// base carries the snapshot and the per-operation generation tracking
// shared by every slice.
type base[T any] struct {
	store *Store
	name  string

	mu      sync.RWMutex
	snap    Snapshot[T]
	gen     uint64
	running map[string]inflight
}

func newBase[T any](s *Store, name string) base[T] {
	return base[T]{store: s, name: name, running: make(map[string]inflight)}
}

// Snapshot returns a copy of the current state.
func (b *base[T]) Snapshot() Snapshot[T] {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap
}

// Cancel abandons every in-flight operation. Their results are dropped.
func (b *base[T]) Cancel() {
	b.mu.Lock()
	if len(b.running) == 0 {
		b.mu.Unlock()
		return
	}
	for op, r := range b.running {
		r.cancel()
		delete(b.running, op)
	}
	b.snap.Loading = false
	b.mu.Unlock()
	b.store.emit(Event{Slice: b.name, Op: "cancel"})
}

// begin starts op, cancelling any previous run of the same op.
func (b *base[T]) begin(parent context.Context, op string) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(parent)

	b.mu.Lock()
	if prev, ok := b.running[op]; ok {
		prev.cancel()
	}
	b.gen++
	gen := b.gen
	b.running[op] = inflight{gen: gen, cancel: cancel}
	b.snap.Loading = true
	b.snap.Error = ""
	b.mu.Unlock()

	b.store.emit(Event{Slice: b.name, Op: op})
	return ctx, gen
}

// finish commits the outcome of op if gen is still current. apply runs
// under the lock on a copy of Data and only on success.
func (b *base[T]) finish(ctx context.Context, op string, gen uint64, err error, apply func(*T)) error {
	b.mu.Lock()
	cur, ok := b.running[op]
	if !ok || cur.gen != gen {
		b.mu.Unlock()
		b.store.logger.Debug("dropping stale result",
			zap.String("slice", b.name),
			zap.String("op", op),
			zap.Uint64("generation", gen),
		)
		return ErrSuperseded
	}
	// Read the context before releasing it: cancel always leaves it Canceled.
	if ctxErr := ctx.Err(); ctxErr != nil && err == nil {
		err = ctxErr
	}
	cur.cancel()
	delete(b.running, op)
	b.snap.Loading = len(b.running) > 0

	unauthorized := false
	switch {
	case err != nil && errors.Is(err, context.Canceled):
		// Cancelled by the caller: nothing to record.
	case err != nil:
		b.snap.Error = err.Error()
		unauthorized = errors.Is(err, domain.ErrUnauthorized)
	default:
		next := b.snap.Data
		if apply != nil {
			apply(&next)
		}
		b.snap.Data = next
		b.snap.Error = ""
		b.snap.UpdatedAt = time.Now()
	}
	b.mu.Unlock()

	b.store.emit(Event{Slice: b.name, Op: op})
	if unauthorized && !isCredentialCheck(b.name, op) {
		b.store.ForceLogout()
	}
	return err
}

// set replaces Data synchronously, outside any operation.
func (b *base[T]) set(op string, apply func(*T)) {
	b.mu.Lock()
	next := b.snap.Data
	apply(&next)
	b.snap.Data = next
	b.snap.UpdatedAt = time.Now()
	b.mu.Unlock()
	b.store.emit(Event{Slice: b.name, Op: op})
}

func (b *base[T]) reset() {
	b.mu.Lock()
	for op, r := range b.running {
		r.cancel()
		delete(b.running, op)
	}
	b.snap = Snapshot[T]{}
	b.mu.Unlock()
	b.store.emit(Event{Slice: b.name, Op: "reset"})
}

// run is the common shape of an async slice operation.
func run[T, R any](ctx context.Context, b *base[T], op string, fetch func(context.Context) (R, error), apply func(*T, R)) error {
	ctx, gen := b.begin(ctx, op)
	res, err := fetch(ctx)
	return b.finish(ctx, op, gen, err, func(d *T) {
		if apply != nil {
			apply(d, res)
		}
	})
}

// isCredentialCheck reports whether a 401 from op means "wrong password"
// rather than "session expired".
func isCredentialCheck(slice, op string) bool {
	return slice == SliceAuth && (op == opLogin || op == opRegister)
}
