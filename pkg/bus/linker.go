package bus

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/petermattis/goid"

	"github.com/cuemby/burrow/pkg/metrics"
)

// linker owns the subscriptions of one anchor. Dispatch holds the shared
// lock while a handler runs; teardown takes it exclusively, so Close and
// Terminate block until every in-flight handler of the anchor returns.
//
// The active bookkeeping records which goroutines currently hold the shared
// lock so that a reentrant publish on the same goroutine does not acquire it
// twice. Acquiring a read lock recursively can deadlock once a writer is
// waiting, so each goroutine locks at most once per linker. The common case
// is a single dispatching goroutine, tracked in solo without allocating the
// map.
type linker struct {
	id string
	db *database

	mu     sync.Mutex
	solo   int64
	active map[int64]struct{}

	shared sync.RWMutex

	head  *entry
	count atomic.Int32
	dead  atomic.Bool
}

func newLinker(db *database) *linker {
	metrics.AnchorsActive.Inc()
	return &linker{id: uuid.NewString(), db: db}
}

// attach chains the entry onto the linker. Called with the database write
// lock held.
func (l *linker) attach(e *entry) {
	e.link = l
	e.next = l.head
	l.head = e
	l.count.Add(1)
}

// mark acquires the shared lock for the calling goroutine and reports whether
// it did. A goroutine already holding it gets false and must not unmark.
func (l *linker) mark() bool {
	gid := goid.Get()
	l.mu.Lock()
	if l.active == nil {
		switch l.solo {
		case 0:
			l.solo = gid
		case gid:
			l.mu.Unlock()
			return false
		default:
			l.active = map[int64]struct{}{l.solo: {}, gid: {}}
			l.solo = 0
		}
		l.mu.Unlock()
		l.shared.RLock()
		return true
	}
	if _, held := l.active[gid]; held {
		l.mu.Unlock()
		return false
	}
	l.active[gid] = struct{}{}
	l.mu.Unlock()
	l.shared.RLock()
	return true
}

// unmark releases the shared lock acquired by mark. A goroutine whose hold
// was already released by a self-terminating destroy falls through.
func (l *linker) unmark() {
	gid := goid.Get()
	l.mu.Lock()
	if l.solo == gid {
		l.solo = 0
		l.mu.Unlock()
		l.shared.RUnlock()
		return
	}
	if _, held := l.active[gid]; held {
		delete(l.active, gid)
		l.mu.Unlock()
		l.shared.RUnlock()
		return
	}
	l.mu.Unlock()
}

// destroy tears down every subscription of the linker. It waits for all
// in-flight handlers on other goroutines, releasing the calling goroutine's
// own hold first so a handler may terminate its own anchor.
func (l *linker) destroy() {
	if l.dead.Swap(true) {
		return
	}

	gid := goid.Get()
	l.mu.Lock()
	if l.solo == gid {
		l.solo = 0
		l.mu.Unlock()
		l.shared.RUnlock()
	} else if _, held := l.active[gid]; held {
		delete(l.active, gid)
		l.mu.Unlock()
		l.shared.RUnlock()
	} else {
		l.mu.Unlock()
	}

	l.shared.Lock()
	head := l.head
	l.head = nil
	l.count.Store(0)
	l.db.release(head)
	l.shared.Unlock()

	metrics.AnchorsActive.Dec()
}
