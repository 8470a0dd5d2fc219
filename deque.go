package deque

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"
)

// DefaultCapacity is the capacity of a Deque created by New. It is also the
// floor below which such a Deque never shrinks.
const DefaultCapacity = 8

// Deque is a double-ended queue backed by a circular buffer. It can be used
// for either LIFO or FIFO ordering, or something in between.
//
// To create a Deque instance, you must use one of the available constructors,
// New(), NewWithCapacity(cap), or FromSlice(s). nil Deques panic when
// mutated; Len, Empty, Get and the iterators treat them as empty.
//
// If a push finds the buffer full, the Deque reallocates to twice the size.
// If a pop finds the buffer less than a quarter full, the Deque first shrinks
// to exactly its length, but never below the capacity it was created with.
//
// A Deque is not safe for concurrent use.
type Deque[T any] struct {
	buf []T
	// head and tail are the physical slots of the first and last elements.
	// They only mean something while size > 0.
	head, tail int
	size       int
	minCap     int
}

// Sequence is the read-only view shared by every deque kind in this package.
// Equality accepts any Sequence, so a Deque compares equal to a MaxDeque
// holding the same elements.
type Sequence[T any] interface {
	Len() int
	Get(i int) (T, bool)
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// New allocates a Deque with DefaultCapacity.
func New[T any]() *Deque[T] {
	d, _ := NewWithCapacity[T](DefaultCapacity)
	return d
}

// NewWithCapacity takes in the starting capacity, which is also the floor
// for shrinking. A capacity of zero is raised to one. Returns an error if
// passed a negative value.
func NewWithCapacity[T any](capacity int) (*Deque[T], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	c := max(1, capacity)
	return &Deque[T]{buf: make([]T, c), tail: c - 1, minCap: c}, nil
}

// FromSlice copies every element of s to a new Deque, front to back. The
// slice's capacity is irrelevant and memory is not shared.
func FromSlice[T any](s []T) *Deque[T] {
	d := New[T]()
	if len(s) > d.cap() {
		d.buf = make([]T, len(s))
	}
	copy(d.buf, s)
	d.head = 0
	d.tail = d.wrap(len(s) - 1)
	d.size = len(s)
	return d
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Len returns the number of elements in the Deque or 0 if nil.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.size
}

// Empty returns whether the Deque is empty.
func (d *Deque[T]) Empty() bool { return d.Len() == 0 }

// Full returns whether the Deque is full. Pushing to a full Deque reallocates.
func (d *Deque[T]) Full() bool { return d.size == d.cap() }

// Cap returns the current Deque capacity.
func (d *Deque[T]) Cap() int { return len(d.buf) }
func (d *Deque[T]) cap() int { return len(d.buf) }

// PushFront puts t at the front of the Deque. Use PushFront and PopBack for
// FIFO ordering, or PushFront and PopFront for LIFO ordering.
func (d *Deque[T]) PushFront(t T) {
	if d.Full() {
		d.grow()
	}
	d.head = d.wrap(d.head - 1)
	d.buf[d.head] = t
	d.size++
	if d.size == 1 {
		d.tail = d.head
	}
}

// PushBack puts t at the back of the Deque. Use PushBack and PopFront for
// FIFO ordering, or PushBack and PopBack for LIFO ordering.
func (d *Deque[T]) PushBack(t T) {
	if d.Full() {
		d.grow()
	}
	d.tail = d.wrap(d.tail + 1)
	d.buf[d.tail] = t
	d.size++
	if d.size == 1 {
		d.head = d.tail
	}
}

// PeekFront returns the first element in the Deque. If the Deque is empty, it
// returns false.
func (d *Deque[T]) PeekFront() (t T, ok bool) {
	if d.Empty() {
		return
	}
	return d.buf[d.head], true
}

// PeekBack returns the last element in the Deque. If the Deque is empty, it
// returns false.
func (d *Deque[T]) PeekBack() (t T, ok bool) {
	if d.Empty() {
		return
	}
	return d.buf[d.tail], true
}

// PopFront removes the first element in the Deque and returns it. If it's
// empty, returns false and nothing changes. The slot is zeroed, so the Deque
// keeps no reference to the returned element.
func (d *Deque[T]) PopFront() (t T, ok bool) {
	if d.Empty() {
		return
	}
	d.shrink()
	var zero T
	t, d.buf[d.head] = d.buf[d.head], zero
	d.head = d.wrap(d.head + 1)
	d.size--
	return t, true
}

// PopBack removes the last element in the Deque and returns it. If it's
// empty, returns false and nothing changes. The slot is zeroed, so the Deque
// keeps no reference to the returned element.
func (d *Deque[T]) PopBack() (t T, ok bool) {
	if d.Empty() {
		return
	}
	d.shrink()
	var zero T
	t, d.buf[d.tail] = d.buf[d.tail], zero
	d.tail = d.wrap(d.tail - 1)
	d.size--
	return t, true
}

// Get returns the i-th element of the Deque, counting from the front. It
// returns false for any i outside [0, Len()), including negative ones. Get
// never modifies the Deque.
func (d *Deque[T]) Get(i int) (t T, ok bool) {
	if i < 0 || i >= d.Len() {
		return
	}
	return d.at(i), true
}

// Set writes t to the i-th position in the Deque. It returns false, writing
// nothing, if i is out of bounds.
func (d *Deque[T]) Set(i int, t T) bool {
	if i < 0 || i >= d.Len() {
		return false
	}
	d.buf[d.wrap(d.head+i)] = t
	return true
}

// Clear empties the Deque, zeroing existing elements and maintaining
// capacity.
func (d *Deque[T]) Clear() {
	clear(d.buf)
	d.head, d.tail, d.size = 0, d.cap()-1, 0
}

// String formats the elements front to back, like a slice.
func (d *Deque[T]) String() string {
	return fmt.Sprint(d.MakeSliceCopy())
}

/*****************************************************************************
 * RESIZING
 *****************************************************************************/

func (d *Deque[T]) grow() {
	d.resize(max(1, d.cap()<<1))
}

// shrink runs before a pop removes its element, so the element is read from
// the new layout.
func (d *Deque[T]) shrink() {
	if d.size<<2 < d.cap() && d.cap() > d.minCap {
		d.resize(max(d.size, d.minCap))
	}
}

// resize moves the elements, front to back, into slots 0..size-1 of a new
// buffer. It is the only place where the physical layout changes.
func (d *Deque[T]) resize(newCap int) {
	newBuf := make([]T, newCap)
	a, b := d.slices()
	n := copy(newBuf, a)
	copy(newBuf[n:], b)

	d.buf = newBuf
	d.head = 0
	d.tail = d.wrap(d.size - 1)
}

/*****************************************************************************
 * SLICE API
 *****************************************************************************/

// Helper to reuse the slices package functions. The first slice holds the
// elements from head to the end of the buffer, the second the ones that
// wrapped around to its start.
func (d *Deque[T]) slices() (a, b []T) {
	if d.Empty() {
		return nil, nil
	}
	end := d.head + d.size
	if end <= d.cap() {
		return d.buf[d.head:end], nil
	}
	return d.buf[d.head:], d.buf[:end-d.cap()]
}

// MakeSliceCopy allocates a slice to hold every Deque element and copies them
// front to back.
func (d *Deque[T]) MakeSliceCopy() []T {
	a, b := d.slices()
	s := make([]T, 0, d.Len())
	s = append(s, a...)
	return append(s, b...)
}

// Contains returns whether the element is in the Deque. This must not be a
// method, otherwise Deque would be constrained to comparable elements. It has
// the same semantics as slices.Contains.
func Contains[T comparable](d *Deque[T], t T) bool {
	a, b := d.slices()
	return slices.Contains(a, t) || slices.Contains(b, t)
}

// ContainsFunc returns whether an element satisfying f is in the Deque. It has
// the same semantics as slices.ContainsFunc.
func (d *Deque[T]) ContainsFunc(f func(T) bool) bool {
	a, b := d.slices()
	return slices.ContainsFunc(a, f) || slices.ContainsFunc(b, f)
}

// Index returns the index of the first ocurrence of t in the Deque or -1 if
// absent. It has the same semantics as slices.Index.
func Index[T comparable](d *Deque[T], t T) int {
	return d.IndexFunc(func(u T) bool { return u == t })
}

// IndexFunc returns the index of the first element that satisfies f in the
// Deque or -1 if none do.
func (d *Deque[T]) IndexFunc(f func(T) bool) int {
	a, b := d.slices()
	if i := slices.IndexFunc(a, f); i != -1 {
		return i
	}
	if i := slices.IndexFunc(b, f); i != -1 {
		return i + len(a)
	}
	return -1
}

// Max returns the maximum element in the Deque, or false if it is empty.
// Unlike slices.Max, it does not panic on an empty Deque.
func Max[T cmp.Ordered](d *Deque[T]) (T, bool) {
	return d.MaxFunc(cmp.Compare[T])
}

// Min returns the minimum element in the Deque, or false if it is empty.
func Min[T cmp.Ordered](d *Deque[T]) (T, bool) {
	return d.MinFunc(cmp.Compare[T])
}

// MaxFunc returns the first maximal element under cmp, or false if the Deque
// is empty.
func (d *Deque[T]) MaxFunc(cmp func(T, T) int) (t T, ok bool) {
	return d.extreme(func(a, b T) bool { return cmp(a, b) > 0 })
}

// MinFunc returns the first minimal element under cmp, or false if the Deque
// is empty.
func (d *Deque[T]) MinFunc(cmp func(T, T) int) (t T, ok bool) {
	return d.extreme(func(a, b T) bool { return cmp(a, b) < 0 })
}

// extreme keeps the earliest element that no later one beats.
func (d *Deque[T]) extreme(beats func(a, b T) bool) (best T, ok bool) {
	for t := range d.Iter() {
		if !ok || beats(t, best) {
			best, ok = t, true
		}
	}
	return
}

// ForEach takes in a function that returns a bool and calls it in order for
// every element in the Deque, or until the first call that returns false.
func (d *Deque[T]) ForEach(f func(T) bool) {
	for t := range d.Iter() {
		if !f(t) {
			return
		}
	}
}

/*****************************************************************************
 * EQUALITY
 *****************************************************************************/

// Equal reports whether other holds the same elements as d, in the same
// order, compared with ==. other may be a *Deque[T] or any Sequence[T];
// anything else is not equal. Two nil Deques are equal, but an empty Deque
// and nil are not. This must not be a method, otherwise Deque would be
// constrained to comparable elements.
func Equal[T comparable](d *Deque[T], other any) bool {
	return d.EqualFunc(other, func(a, b T) bool { return a == b })
}

// EqualFunc is like Equal but compares elements with eq. A Deque compared
// with itself is equal without calling eq.
func (d *Deque[T]) EqualFunc(other any, eq func(T, T) bool) bool {
	switch o := other.(type) {
	case *Deque[T]:
		if d == o {
			return true
		}
		if d == nil || o == nil || d.size != o.size {
			return false
		}
		for i := range d.size {
			if !eq(d.at(i), o.at(i)) {
				return false
			}
		}
		return true

	case *MaxDeque[T]:
		if o == nil {
			return d == nil
		}
		return d.EqualFunc(o.Deque, eq)

	case Sequence[T]:
		if d == nil || d.Len() != o.Len() {
			return false
		}
		for i := range d.size {
			u, ok := o.Get(i)
			if !ok || !eq(d.at(i), u) {
				return false
			}
		}
		return true

	default:
		return false
	}
}

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// Iter returns an iterator over values only, front to back. If you need
// indexes, use All instead. Each call to the returned function starts over.
// Modifying the Deque during iteration gives unspecified results.
func (d *Deque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		a, b := d.slices()
		for _, t := range a {
			if !yield(t) {
				return
			}
		}
		for _, t := range b {
			if !yield(t) {
				return
			}
		}
	}
}

// All returns an iterator over index-value pairs, front to back. It has the
// same semantics as slices.All.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		a, b := d.slices()
		for i, t := range a {
			if !yield(i, t) {
				return
			}
		}
		for i, t := range b {
			if !yield(len(a)+i, t) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs, back to front. It has
// the same semantics as slices.Backward.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := d.Len() - 1; i >= 0; i-- {
			if !yield(i, d.at(i)) {
				return
			}
		}
	}
}

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

// ErrNegativeCapacity is returned when trying to create a Deque with a
// negative capacity.
var ErrNegativeCapacity = errors.New("capacity cannot be negative")

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

// wrap maps any integer onto a physical slot. Go's % keeps the sign of the
// dividend, so negative values are folded back explicitly.
func (d *Deque[T]) wrap(i int) int {
	n := d.cap()
	return (i%n + n) % n
}

// at skips bounds checks; 0 <= i < size must hold.
func (d *Deque[T]) at(i int) T {
	return d.buf[d.wrap(d.head+i)]
}
