package ieds

import (
	"context"
	"runtime"
	"sync"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// ErrAlreadyRunning is returned when a search is started on an Explorer
// that has not finished its previous one.
var ErrAlreadyRunning = errors.New("ieds: search already running")

// Status is the way a search finished.
type Status int

const (
	StatusCompleted Status = iota
	StatusCancelled
)

func (s Status) String() string {
	if s == StatusCancelled {
		return "cancelled"
	}

	return "completed"
}

// Stats summarizes a single search.
type Stats struct {
	Status     Status
	Created    int // Nodes recorded, including the root.
	Expanded   int
	Terminal   int
	Equilibria int
	DeadEnds   int
	// Number of expansions performed when the first equilibrium or dead end
	// was found, or zero if none was.
	FirstEquilibrium int
	FirstDeadEnd     int
}

func (s *Stats) record(r Result) {
	s.Terminal++
	switch r.Type {
	case Equilibrium:
		s.Equilibria++
		if s.FirstEquilibrium == 0 {
			s.FirstEquilibrium = s.Expanded
		}
	case DeadEnd:
		s.DeadEnds++
		if s.FirstDeadEnd == 0 {
			s.FirstDeadEnd = s.Expanded
		}
	}
}

// Explorer enumerates every reduction path of a game by iterated
// elimination of dominated strategies.
//
// Only one search runs at a time. Nodes are expanded one after another in
// a deterministic order, and the explorer yields the processor after every
// batch, which is also when cancellation is observed.
type Explorer struct {
	params  Params
	log     NodeLog
	reducer *Reducer

	mx      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
	stats   Stats
	err     error
}

// NewExplorer returns an Explorer that records nodes into log.
// If log is nil, an in-memory Log is used.
func NewExplorer(params Params, log NodeLog) *Explorer {
	if log == nil {
		log = NewLog()
	}

	return &Explorer{
		params:  params,
		log:     log,
		reducer: NewReducer(),
	}
}

// NodeLog returns the log nodes are recorded into.
func (e *Explorer) NodeLog() NodeLog {
	return e.log
}

// Run explores every reduction path from root, blocking until the
// frontier is empty or ctx is done.
//
// Every run restarts from the root: the log is reset first, and the root
// is recorded as a fresh pending node with ID 0. When ctx is done the
// remaining frontier is discarded and StatusCancelled is returned without
// an error; everything recorded up to that point stays in the log.
// onProgress may be nil.
func (e *Explorer) Run(ctx context.Context, root *Node, onProgress ProgressFunc) (Stats, error) {
	if err := e.acquire(nil); err != nil {
		return Stats{}, err
	}

	stats, err := e.run(ctx, root, onProgress)
	e.release(stats, err)
	return stats, err
}

// Start begins exploring from root in a new goroutine and returns
// immediately. Use Wait to collect the result and Cancel to stop early.
func (e *Explorer) Start(ctx context.Context, root *Node, onProgress ProgressFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	if err := e.acquire(cancel); err != nil {
		cancel()
		return err
	}

	go func() {
		stats, err := e.run(ctx, root, onProgress)
		cancel()
		e.release(stats, err)
	}()

	return nil
}

// Cancel stops a search started with Start. It has no effect if no
// search is running.
func (e *Explorer) Cancel() {
	e.mx.Lock()
	defer e.mx.Unlock()
	if e.cancel != nil {
		e.cancel()
	}
}

// IsRunning returns true while a search is in progress.
func (e *Explorer) IsRunning() bool {
	e.mx.Lock()
	defer e.mx.Unlock()
	return e.running
}

// Wait blocks until the current search, if any, finishes and returns
// the result of the most recent search.
func (e *Explorer) Wait() (Stats, error) {
	e.mx.Lock()
	done := e.done
	e.mx.Unlock()
	if done != nil {
		<-done
	}

	e.mx.Lock()
	defer e.mx.Unlock()
	return e.stats, e.err
}

func (e *Explorer) acquire(cancel context.CancelFunc) error {
	e.mx.Lock()
	defer e.mx.Unlock()
	if e.running {
		return ErrAlreadyRunning
	}

	e.running = true
	e.cancel = cancel
	e.done = make(chan struct{})
	return nil
}

func (e *Explorer) release(stats Stats, err error) {
	e.mx.Lock()
	defer e.mx.Unlock()
	e.running = false
	e.cancel = nil
	e.stats = stats
	e.err = err
	close(e.done)
}

func (e *Explorer) run(ctx context.Context, root *Node, onProgress ProgressFunc) (Stats, error) {
	var stats Stats
	if root == nil {
		return stats, errors.Wrap(ErrEmptyMatrix, "nil root")
	}

	if err := e.log.Reset(); err != nil {
		return stats, errors.Wrap(err, "reset node log")
	}

	start := &Node{
		ID:       0,
		ParentID: -1,
		Rows:     root.Rows,
		Cols:     root.Cols,
		matrix:   root.matrix,
	}

	if err := e.log.Put(start); err != nil {
		return stats, errors.Wrap(err, "record root")
	}

	stats.Created = 1
	pending := newFrontier(e.params.Order)
	pending.push(start)
	batchSize := e.params.batchSize()
	for {
		select {
		case <-ctx.Done():
			glog.V(1).Infof("Search cancelled after %d expansions, discarding %d pending nodes",
				stats.Expanded, pending.len())
			pending.discard()
			stats.Status = StatusCancelled
			return stats, nil
		default:
		}

		if pending.len() == 0 {
			glog.V(1).Infof("Search completed: %d nodes, %d equilibria, %d dead ends",
				stats.Created, stats.Equilibria, stats.DeadEnds)
			stats.Status = StatusCompleted
			return stats, nil
		}

		for i := 0; i < batchSize && pending.len() > 0; i++ {
			if err := e.step(pending, &stats); err != nil {
				return stats, err
			}
		}

		glog.V(2).Infof("Expanded %d nodes, %d pending", stats.Expanded, pending.len())
		if onProgress != nil {
			onProgress(stats.Expanded)
		}

		runtime.Gosched()
	}
}

// step expands a single node and records its children or its result.
func (e *Explorer) step(pending *frontier, stats *Stats) error {
	node := pending.pop()
	children := e.reducer.Expand(node)
	stats.Expanded++
	if len(children) == 0 {
		stats.record(node.Result())
		return errors.Wrapf(e.log.Put(node), "record result of node %d", node.ID)
	}

	for _, child := range children {
		child.ID = stats.Created
		if err := e.log.Put(child); err != nil {
			return errors.Wrapf(err, "record node %d", child.ID)
		}

		stats.Created++
		pending.push(child)
	}

	return nil
}
