package mutex

import (
	"sync"

	"github.com/zeebo/errs"
)

var ErrEmpty = errs.New("queue is empty")

type mutexFifoQueue[T any] struct {
	MaxSize int
	Store   []*T
	Mutex   *sync.Mutex
}

func CreateQueue[T any](maxsize int) *mutexFifoQueue[T] {
	return &mutexFifoQueue[T]{
		MaxSize: maxsize,
		Mutex:   &sync.Mutex{},
	}
}

func (q *mutexFifoQueue[T]) PushBack(e *T) bool {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	if q.MaxSize > 0 && len(q.Store) == q.MaxSize {
		return false
	}

	q.Store = append(q.Store, e)

	return true
}

func (q *mutexFifoQueue[T]) Pop() (*T, error) {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	if len(q.Store) == 0 {
		return nil, ErrEmpty
	}

	topElement := q.Store[0]
	q.Store = q.Store[1:]

	return topElement, nil
}

// Drain empties the queue and returns everything in FIFO order.
func (q *mutexFifoQueue[T]) Drain() []*T {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()

	drained := q.Store
	q.Store = nil

	return drained
}

func (q *mutexFifoQueue[T]) Size() int {
	q.Mutex.Lock()
	defer q.Mutex.Unlock()
	return len(q.Store)
}

func (q *mutexFifoQueue[T]) IsEmpty() bool {
	return q.Size() == 0
}

func (q *mutexFifoQueue[T]) IsFull() bool {
	length := q.Size()
	return (q.MaxSize > 0 && length == q.MaxSize)
}
