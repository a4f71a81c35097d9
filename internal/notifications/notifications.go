// Package notifications queues short messages during a run and delivers them
// as a single condensed push when the store is closed.
package notifications

import (
	"strings"
	"sync"

	"github.com/zeebo/errs"

	"github.com/Philanthropists/daily-briefing/internal/logging"
	"github.com/Philanthropists/daily-briefing/internal/queue"
	"github.com/Philanthropists/daily-briefing/internal/queue/impl/mutex"
)

type Client interface {
	SendMessage(msg string) ([]byte, error)
}

type Store struct {
	Client Client

	once   sync.Once
	mu     sync.Mutex
	closed bool
	queue  queue.FIFOQueue[string]
}

func (s *Store) init() {
	s.once.Do(func() {
		s.queue = mutex.CreateQueue[string](0)
	})
}

// Push enqueues a message for delivery on Close.
func (s *Store) Push(msg string) error {
	s.init()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errs.New("notifications are closed")
	}

	if !s.queue.PushBack(&msg) {
		return errs.New("notification queue is full")
	}

	return nil
}

// PushError logs msg as an error and queues it for delivery.
func (s *Store) PushError(log *logging.Logger, msg string) error {
	log.Error(msg)
	return s.Push("ERROR: " + msg)
}

// Close flushes all pending messages as one condensed delivery. The store
// accepts no further pushes afterwards.
func (s *Store) Close() error {
	s.init()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	return s.flush()
}

func (s *Store) flush() error {
	log := logging.New()

	var condensedMsgs []string
	for _, msg := range s.queue.Drain() {
		if msg != nil {
			condensedMsgs = append(condensedMsgs, *msg)
		}
	}

	completeMsg := strings.Join(condensedMsgs, "\n")
	if completeMsg == "" {
		return nil
	}

	if s.Client == nil {
		log.Warn("notifications client is not set, dropping pending messages",
			logging.Int("pending", len(condensedMsgs)))
		return nil
	}

	resp, err := s.Client.SendMessage(completeMsg)
	if err != nil {
		log.Error("could not send notification",
			logging.Error(err),
			logging.String("response", string(resp)))
		return errs.Wrap(err)
	}

	log.Debug("notifications were flushed",
		logging.Int("bytes", len(completeMsg)))

	return nil
}
