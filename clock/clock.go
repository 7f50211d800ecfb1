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
	"slices"
	"unsafe"

	version "github.com/hashicorp/go-version"
	"golang.org/x/sys/unix"
)

// Source is a clock identifier with a display name
type Source struct {
	ID   int32
	Name string
	// first kernel release to support the clock
	Since string
}

// sources is the ordered registry of clock sources we probe.
// Order is only cosmetic but must stay stable for comparable output.
var sources = []Source{
	{ID: unix.CLOCK_REALTIME, Name: "CLOCK_REALTIME", Since: "2.6.0"},
	{ID: unix.CLOCK_REALTIME_COARSE, Name: "CLOCK_REALTIME_COARSE", Since: "2.6.32"},
	{ID: unix.CLOCK_MONOTONIC, Name: "CLOCK_MONOTONIC", Since: "2.6.0"},
	{ID: unix.CLOCK_MONOTONIC_COARSE, Name: "CLOCK_MONOTONIC_COARSE", Since: "2.6.32"},
	{ID: unix.CLOCK_MONOTONIC_RAW, Name: "CLOCK_MONOTONIC_RAW", Since: "2.6.28"},
	{ID: unix.CLOCK_BOOTTIME, Name: "CLOCK_BOOTTIME", Since: "2.6.39"},
	{ID: unix.CLOCK_PROCESS_CPUTIME_ID, Name: "CLOCK_PROCESS_CPUTIME_ID", Since: "2.6.12"},
	{ID: unix.CLOCK_THREAD_CPUTIME_ID, Name: "CLOCK_THREAD_CPUTIME_ID", Since: "2.6.12"},
}

// Sources returns a copy of the registry
func Sources() []Source {
	return slices.Clone(sources)
}

// ByName returns registered source with given display name
func ByName(name string) (Source, error) {
	for _, s := range sources {
		if s.Name == name {
			return s, nil
		}
	}
	return Source{}, fmt.Errorf("unknown clock source %q", name)
}

// SupportedBy tells if kernel release is recent enough to provide the source.
// Distribution suffixes such as "-13-amd64" are ignored.
func (s Source) SupportedBy(kernel string) (bool, error) {
	since, err := version.NewVersion(s.Since)
	if err != nil {
		return false, fmt.Errorf("parsing %s release %q: %w", s.Name, s.Since, err)
	}
	running, err := version.NewVersion(kernel)
	if err != nil {
		return false, fmt.Errorf("parsing kernel release %q: %w", kernel, err)
	}
	return !running.Core().LessThan(since), nil
}

// Getres returns the resolution of the clock
func Getres(clockid int32) (Reading, error) {
	var ts unix.Timespec
	if err := unix.ClockGetres(clockid, &ts); err != nil {
		return Reading{}, err
	}
	return FromTimespec(ts), nil
}

// Gettime returns current value of the clock
func Gettime(clockid int32) (Reading, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(clockid, &ts); err != nil {
		return Reading{}, err
	}
	return FromTimespec(ts), nil
}

// TimespecSize returns sizes of tv_sec and tv_nsec in this ABI
func TimespecSize() (sec, nsec uintptr) {
	var ts unix.Timespec
	return unsafe.Sizeof(ts.Sec), unsafe.Sizeof(ts.Nsec)
}

// Gettimeofday returns current wall clock time. Timezone is not requested.
func Gettimeofday() (Reading, error) {
	var tv unix.Timeval
	if err := unix.Gettimeofday(&tv); err != nil {
		return Reading{}, err
	}
	return FromTimeval(tv), nil
}
