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
Package checker implements the vdsocheck harness.

Runner probes every registered clock source with clock_getres and
clock_gettime, calls gettimeofday once, then takes SIGALRM through a full
signal round trip. Every report line carries the variant tag of the binary
and the number of failed queries becomes the exit code.
*/
package checker

import (
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/facebook/vdsocheck/clock"
	"github.com/facebook/vdsocheck/variant"
)

// Observer receives every Outcome after it was reported
type Observer func(o Outcome)

// Runner sequences the checks
type Runner struct {
	Platform Platform
	Config   *Config
	Tag      variant.Tag
	Sources  []clock.Source
	// Out receives the report, Filler the liveness pattern of the signal check
	Out    io.Writer
	Filler io.Writer
	// Kernel release, used to explain missing clock sources
	Kernel string

	observers    []Observer
	now          func() time.Time
	timespecSize func() (sec, nsec uintptr)
}

// NewRunner returns Runner writing to stdout and stderr
func NewRunner(p Platform, cfg *Config) *Runner {
	return &Runner{
		Platform: p,
		Config:   cfg,
		Tag:      variant.Current(),
		Sources:  clock.Sources(),
		Out:      os.Stdout,
		Filler:   os.Stderr,
		now:      time.Now,

		timespecSize: clock.TimespecSize,
	}
}

// Observe registers o to be called for every outcome
func (r *Runner) Observe(o Observer) {
	r.observers = append(r.observers, o)
}

func (r *Runner) report() *report {
	return &report{w: r.Out, tag: r.Tag}
}

func (r *Runner) emit(o Outcome) {
	r.report().outcome(o)
	for _, observe := range r.observers {
		observe(o)
	}
}

// Run runs all checks and returns number of failed ones
func (r *Runner) Run() int {
	rep := r.report()
	rep.line("-- tests start --")
	sec, nsec := r.timespecSize()
	rep.line("timespec: tv_sec = %d bytes, tv_nsec = %d bytes", sec, nsec)
	log.Debugf("running with %+v", *r.Config)
	time.Sleep(r.Config.Settle)

	failures := 0
	failures += r.checkClocks()
	failures += r.checkGettimeofday()
	failures += r.checkSigreturn()

	rep.line("%d tests failed.", failures)
	rep.line("-- tests end --")
	return failures
}
