package hashtab

// Node is a single element of a List. Nodes are owned by the list that
// created them; holding on to one after it is removed is fine, but passing
// it back to a different list is not.
type Node[K comparable] struct {
	Value K

	prev *Node[K]
	next *Node[K]
}

// Next returns the node after n, or nil at the back of the list.
func (n *Node[K]) Next() *Node[K] { return n.next }

// Prev returns the node before n, or nil at the front of the list.
func (n *Node[K]) Prev() *Node[K] { return n.prev }

// List is a doubly-linked list. The hash table uses it as the bucket
// container for chaining collision resolution, where insertion order must
// be preserved and removal by node identity must be O(1); it works as a
// standalone container as well.
//
// Every by-value operation (Find, Remove, InsertBefore, ...) acts on the
// first node from the front whose value compares equal.
//
// A List is not safe for concurrent use.
type List[K comparable] struct {
	head *Node[K]
	tail *Node[K]
	size int
}

// NewList returns a list seeded with the given values in order.
func NewList[K comparable](values ...K) *List[K] {
	l := &List[K]{}
	for _, v := range values {
		l.PushBack(v)
	}

	return l
}

func (l *List[K]) Len() int      { return l.size }
func (l *List[K]) IsEmpty() bool { return l.size == 0 }

// Front returns the value at the front of the list.
func (l *List[K]) Front() (K, bool) {
	if l.head == nil {
		var zero K
		return zero, false
	}

	return l.head.Value, true
}

// Items returns the values in front-to-back order.
func (l *List[K]) Items() []K {
	items := make([]K, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		items = append(items, n.Value)
	}

	return items
}

// PushFront adds a value at the front and returns its node.
func (l *List[K]) PushFront(value K) *Node[K] {
	n := &Node[K]{Value: value, next: l.head}

	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++

	return n
}

// PushBack adds a value at the back and returns its node.
func (l *List[K]) PushBack(value K) *Node[K] {
	n := &Node[K]{Value: value, prev: l.tail}

	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++

	return n
}

// InsertBefore adds a value before the first node holding ref. Returns nil
// if ref is not in the list.
func (l *List[K]) InsertBefore(value, ref K) *Node[K] {
	at := l.Find(ref)
	if at == nil {
		return nil
	}
	if at.prev == nil {
		return l.PushFront(value)
	}

	n := &Node[K]{Value: value, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	l.size++

	return n
}

// InsertAfter adds a value after the first node holding ref. Returns nil
// if ref is not in the list.
func (l *List[K]) InsertAfter(value, ref K) *Node[K] {
	at := l.Find(ref)
	if at == nil {
		return nil
	}
	if at.next == nil {
		return l.PushBack(value)
	}

	n := &Node[K]{Value: value, prev: at, next: at.next}
	at.next.prev = n
	at.next = n
	l.size++

	return n
}

// Find returns the first node holding value, or nil.
func (l *List[K]) Find(value K) *Node[K] {
	for n := l.head; n != nil; n = n.next {
		if n.Value == value {
			return n
		}
	}

	return nil
}

// Replace swaps the first occurrence of old for new and returns its node.
// Returns nil if old is not in the list.
func (l *List[K]) Replace(old, new K) *Node[K] {
	n := l.Find(old)
	if n == nil {
		return nil
	}
	n.Value = new

	return n
}

// Swap exchanges the first occurrences of a and b. Returns false if either
// is not in the list.
func (l *List[K]) Swap(a, b K) bool {
	na, nb := l.Find(a), l.Find(b)
	if na == nil || nb == nil {
		return false
	}
	na.Value, nb.Value = nb.Value, na.Value

	return true
}

// RemoveNode unlinks a node previously returned by this list.
func (l *List[K]) RemoveNode(n *Node[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}

	n.prev, n.next = nil, nil
	l.size--
}

// Remove unlinks the first node holding value. Returns false if value is
// not in the list.
func (l *List[K]) Remove(value K) bool {
	n := l.Find(value)
	if n == nil {
		return false
	}
	l.RemoveNode(n)

	return true
}

// PopFront removes and returns the value at the front of the list.
func (l *List[K]) PopFront() (K, bool) {
	if l.head == nil {
		var zero K
		return zero, false
	}

	v := l.head.Value
	l.RemoveNode(l.head)

	return v, true
}

// Reverse flips the list in place.
func (l *List[K]) Reverse() {
	for n := l.head; n != nil; n = n.prev {
		n.prev, n.next = n.next, n.prev
	}

	l.head, l.tail = l.tail, l.head
}

// Clear drops every node.
func (l *List[K]) Clear() {
	l.head, l.tail = nil, nil
	l.size = 0
}
