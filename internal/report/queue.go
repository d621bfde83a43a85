package report

import "sync"

// Queue is a thread-safe result queue that automatically doubles its
// capacity when it reaches 70% full. Concurrent workers Send results; a
// single printer Receives them in completion order.
type Queue struct {
	mu       sync.Mutex
	cond     *sync.Cond
	buf      []Result
	head     int // read position
	tail     int // write position
	count    int
	capacity int
	closed   bool
}

// NewQueue creates a queue with the given initial capacity.
func NewQueue(initialCapacity int) *Queue {
	if initialCapacity < 1 {
		initialCapacity = 1
	}
	q := &Queue{
		buf:      make([]Result, initialCapacity),
		capacity: initialCapacity,
	}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Send adds a result to the queue. Grows the queue if at 70% capacity.
// Returns false if the queue is closed.
func (q *Queue) Send(r Result) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}

	threshold := (q.capacity * 70) / 100
	if threshold < 1 {
		threshold = 1
	}
	if q.count+1 >= threshold {
		q.grow()
	}

	q.buf[q.tail] = r
	q.tail = (q.tail + 1) % q.capacity
	q.count++

	q.cond.Signal()
	return true
}

// Receive removes and returns a result. Blocks until one is available or
// the queue is closed. Returns the zero Result and false when closed and
// drained.
func (q *Queue) Receive() (Result, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.count == 0 && !q.closed {
		q.cond.Wait()
	}

	if q.count == 0 && q.closed {
		return Result{}, false
	}

	r := q.buf[q.head]
	q.buf[q.head] = Result{} // Clear reference for GC
	q.head = (q.head + 1) % q.capacity
	q.count--

	return r, true
}

// Close closes the queue. After closing, Send returns false; receivers get
// the remaining results, then the closed signal.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.cond.Broadcast()
}

// Len returns the number of queued results.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// grow doubles the queue capacity. Must be called with lock held.
func (q *Queue) grow() {
	newCapacity := q.capacity * 2
	newBuf := make([]Result, newCapacity)

	if q.count > 0 {
		if q.head < q.tail {
			copy(newBuf, q.buf[q.head:q.tail])
		} else {
			n := copy(newBuf, q.buf[q.head:])
			copy(newBuf[n:], q.buf[:q.tail])
		}
	}

	q.buf = newBuf
	q.head = 0
	q.tail = q.count
	q.capacity = newCapacity
}
