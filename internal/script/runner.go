package script

import (
	"fmt"
	"strconv"
	"strings"

	gdeque "github.com/gammazero/deque"
	"github.com/rs/zerolog"

	"github.com/lucasgdosr/circdeque"
)

const absent = "<empty>"

// Runner applies script operations to a deque of strings and writes the
// result of every query operation to its output, one per line.
type Runner struct {
	log   zerolog.Logger
	cfg   Config
	deque *deque.MaxDeque[string]
	ref   *gdeque.Deque
}

// NewRunner creates a runner with an empty deque.
func NewRunner(log zerolog.Logger, options ...Option) *Runner {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	r := Runner{
		log:   log.With().Str("component", "script_runner").Logger(),
		cfg:   cfg,
		deque: deque.NewMax(strings.Compare),
	}
	if cfg.Reference {
		r.ref = gdeque.New()
	}

	return &r
}

// Deque gives access to the deque the runner operates on.
func (r *Runner) Deque() *deque.MaxDeque[string] {
	return r.deque
}

// Run applies the operations in order. It stops at the first operation that
// cannot be written out or, with the reference enabled, that leaves the two
// deques holding different sequences.
func (r *Runner) Run(ops []Op) error {
	for _, op := range ops {
		err := r.apply(op)
		if err != nil {
			return fmt.Errorf("could not apply operation (line: %d, op: %s): %w", op.Line, op, err)
		}
	}

	r.log.Info().
		Int("operations", len(ops)).
		Int("length", r.deque.Len()).
		Int("capacity", r.deque.Cap()).
		Msg("script completed")

	return nil
}

func (r *Runner) apply(op Op) error {

	var (
		result string
		query  = true
	)

	switch op.Kind {
	case PushFront:
		r.deque.PushFront(op.Value)
		query = false
	case PushBack:
		r.deque.PushBack(op.Value)
		query = false
	case PopFront:
		v, ok := r.deque.PopFront()
		result = show(v, ok)
	case PopBack:
		v, ok := r.deque.PopBack()
		result = show(v, ok)
	case Get:
		v, ok := r.deque.Get(op.Index)
		result = show(v, ok)
	case Size:
		result = strconv.Itoa(r.deque.Len())
	case Empty:
		result = strconv.FormatBool(r.deque.Empty())
	case Print:
		result = r.deque.String()
	case Max:
		v, ok := r.deque.Max()
		result = show(v, ok)
	case Clear:
		r.deque.Clear()
		query = false
	default:
		return fmt.Errorf("%q: %w", op.Kind, ErrUnknownOperation)
	}

	r.log.Debug().
		Int("line", op.Line).
		Str("op", op.String()).
		Int("length", r.deque.Len()).
		Int("capacity", r.deque.Cap()).
		Msg("operation applied")

	if r.ref != nil {
		err := r.mirror(op, result)
		if err != nil {
			return err
		}
	}

	if !query {
		return nil
	}
	_, err := fmt.Fprintln(r.cfg.Output, result)
	if err != nil {
		return fmt.Errorf("could not write result: %w", err)
	}

	return nil
}

// mirror applies op to the reference deque, then compares what op returned
// and the resulting sequences.
func (r *Runner) mirror(op Op, result string) error {

	want := ""
	switch op.Kind {
	case PushFront:
		r.ref.PushFront(op.Value)
	case PushBack:
		r.ref.PushBack(op.Value)
	case PopFront:
		want = absent
		if r.ref.Len() > 0 {
			want = r.ref.PopFront().(string)
		}
	case PopBack:
		want = absent
		if r.ref.Len() > 0 {
			want = r.ref.PopBack().(string)
		}
	case Get:
		want = absent
		if op.Index >= 0 && op.Index < r.ref.Len() {
			want = r.ref.At(op.Index).(string)
		}
	case Clear:
		r.ref.Clear()
	default:
		// Other queries are derived from the sequence, which is checked below.
		want = result
	}

	if want != result {
		return fmt.Errorf("%s returned %q, reference returned %q: %w", op.Kind, result, want, ErrDiverged)
	}

	if r.ref.Len() != r.deque.Len() {
		return fmt.Errorf("length is %d, reference length is %d: %w", r.deque.Len(), r.ref.Len(), ErrDiverged)
	}
	for i, v := range r.deque.All() {
		refV := r.ref.At(i).(string)
		if v != refV {
			return fmt.Errorf("index %d holds %q, reference holds %q: %w", i, v, refV, ErrDiverged)
		}
	}

	return nil
}

func show(v string, ok bool) string {
	if !ok {
		return absent
	}
	return v
}
