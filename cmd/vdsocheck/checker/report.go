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

package checker

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"golang.org/x/sys/unix"

	"github.com/facebook/vdsocheck/clock"
	"github.com/facebook/vdsocheck/variant"
)

// Names of the checks as they appear in the report
const (
	CheckGetres       = "clock_getres"
	CheckGettime      = "clock_gettime"
	CheckGettimeofday = "gettimeofday"
	CheckSigreturn    = "sigreturn"
)

// Outcome is a result of a single query
type Outcome struct {
	Check   string
	Source  string // clock source name, empty for single-shot checks
	Passed  bool
	Reading *clock.Reading
	Elapsed time.Duration
	Err     error
}

// Errno returns OS error number of a failed query, 0 if there is none
func (o Outcome) Errno() int {
	var errno unix.Errno
	if errors.As(o.Err, &errno) {
		return int(errno)
	}
	return 0
}

func (o Outcome) detail() string {
	if o.Err != nil {
		if errno := o.Errno(); errno != 0 {
			return fmt.Sprintf("%v (%d)", o.Err, errno)
		}
		return o.Err.Error()
	}
	if o.Reading != nil {
		return o.Reading.String()
	}
	return fmt.Sprintf("resumed after %v", o.Elapsed)
}

func (o Outcome) name() string {
	if o.Source == "" {
		return o.Check
	}
	return fmt.Sprintf("%s: %s", o.Check, o.Source)
}

func statusString(passed bool) string {
	if passed {
		return color.GreenString("[ OK ]")
	}
	return color.RedString("[FAIL]")
}

// report writes lines prefixed with the variant tag
type report struct {
	w   io.Writer
	tag variant.Tag
}

func (r *report) line(format string, args ...any) {
	fmt.Fprintf(r.w, "%s %s\n", r.tag, fmt.Sprintf(format, args...))
}

func (r *report) outcome(o Outcome) {
	r.line("%s %s: %s", statusString(o.Passed), o.name(), o.detail())
}

func (r *report) blank() {
	fmt.Fprintln(r.w)
}
