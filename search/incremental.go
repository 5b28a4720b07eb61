// Package search implements the debounced, race-safe search flow behind the
// blog search box: every keystroke restarts a cool-down timer, only a
// quiescent query long enough to be meaningful hits the upstream, and a
// stale response can never overwrite the results of a newer query.
package search

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/EISEC/spb-remont/dto"
)

const (
	// DefaultDebounce is the keystroke cool-down window.
	DefaultDebounce = 300 * time.Millisecond

	// DefaultLimit caps dropdown suggestions.
	DefaultLimit = 5

	// minQueryLen is the shortest query worth a request.
	minQueryLen = 2
)

// PostSearcher is the slice of the blog service the searcher needs.
type PostSearcher interface {
	GetPosts(ctx context.Context, params dto.BlogSearchParams) dto.BlogAPIResponse
}

// Result is one search outcome delivered to the consumer. Idle marks the
// transitions back to the empty state (query cleared or too short); Posts
// may be empty for a served query with zero matches, which the consumer
// renders as "no results", not as an error.
type Result struct {
	Query string
	Posts []dto.BlogPost
	Idle  bool
}

// Options tune an Incremental searcher. Zero values take the defaults.
type Options struct {
	Debounce time.Duration
	Limit    int
}

// Incremental runs the search state machine. Keystrokes go in through Type;
// results come out of Results. Each keystroke bumps a revision counter and
// cancels the in-flight request of the previous revision, so completions
// arriving out of order are discarded instead of clobbering newer results.
type Incremental struct {
	svc      PostSearcher
	debounce time.Duration
	limit    int

	rootCtx    context.Context
	rootCancel context.CancelFunc
	results    chan Result

	mu       sync.Mutex
	revision uint64
	timer    *time.Timer
	inflight context.CancelFunc
	closed   bool
}

// New builds an Incremental searcher over the given service.
func New(svc PostSearcher, opts Options) *Incremental {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Incremental{
		svc:        svc,
		debounce:   opts.Debounce,
		limit:      opts.Limit,
		rootCtx:    ctx,
		rootCancel: cancel,
		results:    make(chan Result, 16),
	}
}

// Results delivers search outcomes. The channel is closed by Close.
func (s *Incremental) Results() <-chan Result {
	return s.results
}

// Type registers the current query text after a keystroke. The pending
// search intent of any earlier keystroke is abandoned entirely: its timer is
// stopped and its request, if already in flight, is cancelled.
func (s *Incremental) Type(query string) {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.revision++
	rev := s.revision
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.inflight != nil {
		s.inflight()
		s.inflight = nil
	}

	if utf8.RuneCountInString(query) < minQueryLen {
		s.emitLocked(Result{Query: query, Idle: true})
		return
	}

	s.timer = time.AfterFunc(s.debounce, func() {
		s.run(rev, query)
	})
}

// Clear resets the searcher to the idle state.
func (s *Incremental) Clear() {
	s.Type("")
}

// Close stops the searcher and closes the results channel. Any in-flight
// request is cancelled.
func (s *Incremental) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.inflight != nil {
		s.inflight()
		s.inflight = nil
	}
	s.rootCancel()
	close(s.results)
}

// run executes the search for one revision once its debounce has elapsed.
func (s *Incremental) run(rev uint64, query string) {
	s.mu.Lock()
	if s.closed || rev != s.revision {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(s.rootCtx)
	s.inflight = cancel
	s.mu.Unlock()

	resp := s.svc.GetPosts(ctx, dto.BlogSearchParams{
		Search:  query,
		PerPage: s.limit,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	cancel()
	if s.closed || rev != s.revision {
		// superseded while in flight; drop the stale response
		return
	}
	s.inflight = nil
	s.emitLocked(Result{Query: query, Posts: resp.Posts})
}

// emitLocked delivers a result without ever blocking the state machine: if
// the consumer lags more than the channel buffer, the oldest pending result
// is dropped in favor of the newest.
func (s *Incremental) emitLocked(r Result) {
	for {
		select {
		case s.results <- r:
			return
		default:
			select {
			case <-s.results:
			default:
			}
		}
	}
}
