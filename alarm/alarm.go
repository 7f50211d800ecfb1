/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

/*
Package alarm implements the plumbing for an asynchronous signal round trip.

Install registers a handler for an alarm class signal, Arm starts a one-shot
ITIMER_REAL timer and Restore puts the default disposition back.
The handler is a data-only callback: it should record the delivery in a
Flag and return, the caller polls the Flag from its own flow.
*/
package alarm

import (
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"golang.org/x/sys/unix"
)

// Flag records delivery of the alarm signal
type Flag struct {
	fired atomic.Bool
}

// Set marks the flag. It returns true only for the call that flipped it.
func (f *Flag) Set() bool {
	return f.fired.CompareAndSwap(false, true)
}

// IsSet reports whether the flag was set
func (f *Flag) IsSet() bool {
	return f.fired.Load()
}

// Handler is called for every delivered signal, never concurrently with itself
type Handler func()

// Notifier delivers a signal to a Handler
type Notifier struct {
	sig  unix.Signal
	ch   chan os.Signal
	done chan struct{}
}

// Install starts delivering sig to h
func Install(sig unix.Signal, h Handler) (*Notifier, error) {
	if h == nil {
		return nil, fmt.Errorf("no handler for %s", unix.SignalName(sig))
	}
	if unix.SignalName(sig) == "" {
		return nil, fmt.Errorf("signal %d: %w", int(sig), unix.EINVAL)
	}
	n := &Notifier{
		sig:  sig,
		ch:   make(chan os.Signal, 1),
		done: make(chan struct{}),
	}
	signal.Notify(n.ch, sig)
	go func() {
		defer close(n.done)
		for range n.ch {
			h()
		}
	}()
	return n, nil
}

// Restore stops delivery, resets the signal to its default action
// and waits for the handler to return.
func (n *Notifier) Restore() {
	signal.Stop(n.ch)
	signal.Reset(n.sig)
	close(n.ch)
	<-n.done
}

// Arm starts a one-shot timer which raises SIGALRM after d
func Arm(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("alarm duration must be positive, got %v", d)
	}
	it := unix.Itimerval{Value: unix.NsecToTimeval(d.Nanoseconds())}
	if _, err := unix.Setitimer(unix.ItimerReal, it); err != nil {
		return fmt.Errorf("setitimer: %w", err)
	}
	return nil
}

// Disarm cancels a pending timer
func Disarm() error {
	if _, err := unix.Setitimer(unix.ItimerReal, unix.Itimerval{}); err != nil {
		return fmt.Errorf("setitimer: %w", err)
	}
	return nil
}
