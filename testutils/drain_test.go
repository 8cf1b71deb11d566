package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recorder is a TestT that remembers failures instead of failing.
type recorder struct {
	errors []string
}

func (r *recorder) Log(...any)          {}
func (r *recorder) Logf(string, ...any) {}

func (r *recorder) Error(args ...any) {
	r.errors = append(r.errors, fmt.Sprint(args...))
}

func (r *recorder) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func filled(vs ...int) chan int {
	ch := make(chan int, len(vs))
	for _, v := range vs {
		ch <- v
	}
	return ch
}

func TestDrainBlocking(t *testing.T) {
	tests := []struct {
		name    string
		ch      func() chan int
		data    []int
		wantErr bool
	}{
		{
			name: "exact",
			ch: func() chan int {
				ch := filled(1, 2)
				close(ch)
				return ch
			},
			data: []int{1, 2},
		},
		{
			name: "closed early",
			ch: func() chan int {
				ch := filled(1)
				close(ch)
				return ch
			},
			data:    []int{1, 2},
			wantErr: true,
		},
		{
			name: "never closed",
			ch: func() chan int {
				return filled(1)
			},
			data:    []int{1},
			wantErr: true,
		},
		{
			name: "extra item",
			ch: func() chan int {
				ch := filled(1, 2)
				close(ch)
				return ch
			},
			data:    []int{1},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			DrainBlocking[int](r, tt.data, tt.ch(), 10*time.Millisecond)
			if tt.wantErr {
				assert.NotEmpty(t, r.errors)
			} else {
				assert.Empty(t, r.errors)
			}
		})
	}
}

func TestDrainBlocking_SlowProducer(t *testing.T) {
	ch := make(chan int)
	go func() {
		defer close(ch)
		for i := 1; i <= 3; i++ {
			time.Sleep(time.Millisecond)
			ch <- i
		}
	}()

	DrainBlocking[int](t, []int{1, 2, 3}, ch, time.Second)
}

func TestCollect(t *testing.T) {
	ch := filled(3, 1, 2)
	close(ch)
	assert.Equal(t, []int{3, 1, 2}, Collect[int](t, ch, time.Second))

	r := &recorder{}
	assert.Equal(t, []int{3}, Collect[int](r, filled(3), 10*time.Millisecond))
	assert.Len(t, r.errors, 1)
}
