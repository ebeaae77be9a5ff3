// SPDX-License-Identifier: Apache-2.0

package driver

import "context"

// semaphore bounds how many files LexAll scans at once, using a buffered
// channel as the counter: acquiring blocks once the buffer is full, and
// releasing is a receive.
type semaphore struct {
	slots chan struct{}
}

func newSemaphore(n int) *semaphore {
	return &semaphore{slots: make(chan struct{}, n)}
}

// Acquire blocks until a slot is free or ctx is done, whichever comes
// first.
func (s *semaphore) Acquire(ctx context.Context) error {
	select {
	case s.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *semaphore) Release() {
	<-s.slots
}
