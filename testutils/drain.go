// Package testutils holds helpers shared by the tests of this module.
package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// DrainBlocking expects to receive data in order from ch, then expects
// ch to be closed. Unlike a plain range over ch, it gives up after
// waiting timeout for any single receive, so a stuck producer fails
// the test instead of hanging it.
func DrainBlocking[T any](t TestT, data []T, ch <-chan T, timeout time.Duration) {
	t.Logf("draining: expecting %v", data)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for i, datum := range data {
		select {
		case el, ok := <-ch:
			if !ok {
				t.Errorf("channel closed early, expecting i=%d %v", i, datum)
				return
			}
			assert.Equal(t, datum, el)
		case <-timer.C:
			t.Errorf("timed out, expecting i=%d %v", i, datum)
			return
		}
		resetTimer(timer, timeout)
	}

	select {
	case el, ok := <-ch:
		if ok {
			t.Errorf("channel should be closed, but received: %v", el)
		}
	case <-timer.C:
		t.Error("at the end of draining, channel was empty but unclosed")
	}
}

// Collect receives from ch until it is closed and returns everything
// received. It reports an error and returns early if ch stays
// silent for longer than timeout.
func Collect[T any](t TestT, ch <-chan T, timeout time.Duration) []T {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var out []T
	for {
		select {
		case el, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, el)
		case <-timer.C:
			t.Errorf("timed out after receiving %v", out)
			return out
		}
		resetTimer(timer, timeout)
	}
}

func resetTimer(timer *time.Timer, d time.Duration) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(d)
}
