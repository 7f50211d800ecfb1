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
	log "github.com/sirupsen/logrus"

	"github.com/facebook/vdsocheck/clock"
)

type clockQuery func(clockid int32) (clock.Reading, error)

func (r *Runner) query(check string, src clock.Source, q clockQuery) int {
	reading, err := q(src.ID)
	if err != nil {
		r.emit(Outcome{Check: check, Source: src.Name, Err: err})
		r.explain(src)
		return 1
	}
	r.emit(Outcome{Check: check, Source: src.Name, Passed: true, Reading: &reading})
	return 0
}

// explain logs when the failure is expected from the kernel version
func (r *Runner) explain(src clock.Source) {
	if r.Kernel == "" {
		return
	}
	ok, err := src.SupportedBy(r.Kernel)
	if err != nil {
		log.Debugf("can't tell if %s is supported: %v", src.Name, err)
		return
	}
	if !ok {
		log.Debugf("%s requires kernel %s, running %s", src.Name, src.Since, r.Kernel)
	}
}

// checkClocks queries resolution and value of every registered clock source
func (r *Runner) checkClocks() int {
	failures := 0
	for _, src := range r.Sources {
		failures += r.query(CheckGetres, src, r.Platform.ClockGetres)
		failures += r.query(CheckGettime, src, r.Platform.ClockGettime)
		r.report().blank()
	}
	return failures
}

// checkGettimeofday queries wall clock through the legacy call
func (r *Runner) checkGettimeofday() int {
	defer r.report().blank()
	reading, err := r.Platform.Gettimeofday()
	if err != nil {
		r.emit(Outcome{Check: CheckGettimeofday, Err: err})
		return 1
	}
	r.emit(Outcome{Check: CheckGettimeofday, Passed: true, Reading: &reading})
	return 0
}
