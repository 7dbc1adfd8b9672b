package utils

import "sync/atomic"

// AutoCloseChanErr delivers the first non-nil error from count senders and
// closes itself once every sender has reported.
type AutoCloseChanErr struct {
	actual chan error
	remain atomic.Int64
	sent   atomic.Bool
}

// NewAutoCloseChanErr .
func NewAutoCloseChanErr(count int) *AutoCloseChanErr {
	ch := &AutoCloseChanErr{
		actual: make(chan error, 1),
	}
	ch.remain.Store(int64(count))
	return ch
}

// Send accounts for one sender, nil errors are dropped.
func (ch *AutoCloseChanErr) Send(err error) {
	if err != nil && ch.sent.CompareAndSwap(false, true) {
		ch.actual <- err
	}
	if ch.remain.Add(-1) == 0 {
		close(ch.actual)
	}
}

// Receive yields the first error sent, or nil once all senders are done.
func (ch *AutoCloseChanErr) Receive() <-chan error {
	return ch.actual
}
