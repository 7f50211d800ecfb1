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

package clock

import (
	"fmt"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/sys/unix"
)

// Unit of the subsecond part of a Reading
type Unit string

// Units we get from the kernel
const (
	Nanosecond  Unit = "ns"
	Microsecond Unit = "us"
)

// Reading is a value returned by a clock call.
// Field widths of timespec and timeval differ between ILP32 and LP64,
// Reading is the same for both.
type Reading struct {
	Sec  uint64
	Sub  int64
	Unit Unit
}

// newReading widens sec and sub regardless of how big they are in the current ABI
func newReading[S, N constraints.Integer](sec S, sub N, unit Unit) Reading {
	return Reading{Sec: uint64(sec), Sub: int64(sub), Unit: unit}
}

// FromTimespec converts unix.Timespec
func FromTimespec(ts unix.Timespec) Reading {
	return newReading(ts.Sec, ts.Nsec, Nanosecond)
}

// FromTimeval converts unix.Timeval
func FromTimeval(tv unix.Timeval) Reading {
	return newReading(tv.Sec, tv.Usec, Microsecond)
}

// Duration returns reading as time.Duration
func (r Reading) Duration() time.Duration {
	sub := time.Duration(r.Sub)
	if r.Unit == Microsecond {
		sub *= time.Microsecond
	}
	return time.Duration(r.Sec)*time.Second + sub
}

// Seconds returns reading as floating point seconds
func (r Reading) Seconds() float64 {
	return r.Duration().Seconds()
}

func (r Reading) String() string {
	return fmt.Sprintf("%d sec, %d %s", r.Sec, r.Sub, r.Unit)
}
