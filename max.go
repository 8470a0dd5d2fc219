package deque

// MaxDeque is a Deque that knows how to find its largest element under a
// comparator fixed at construction. Every Deque method is available on it.
type MaxDeque[T any] struct {
	*Deque[T]
	cmp func(a, b T) int
}

// NewMax allocates an empty MaxDeque ordered by cmp, which follows the
// cmp.Compare convention.
func NewMax[T any](cmp func(a, b T) int) *MaxDeque[T] {
	return &MaxDeque[T]{Deque: New[T](), cmp: cmp}
}

// Max returns the largest element, or false if the MaxDeque is empty. It scans
// the current contents, so it stays correct after pops.
func (m *MaxDeque[T]) Max() (T, bool) {
	return m.MaxFunc(m.cmp)
}

// MaxBy returns the largest element under cmp instead of the MaxDeque's own
// comparator.
func (m *MaxDeque[T]) MaxBy(cmp func(a, b T) int) (T, bool) {
	return m.MaxFunc(cmp)
}
