package queue

type FIFOQueue[T any] interface {
	PushBack(*T) bool
	Pop() (*T, error)
	Drain() []*T
	Size() int
	IsEmpty() bool
	IsFull() bool
}
