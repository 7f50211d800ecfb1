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
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/facebook/vdsocheck/alarm"
)

// runs of characters making up one row of the liveness pattern
var fillerRuns = []struct {
	first byte
	n     int
}{
	{'a', 26},
	{'A', 26},
	{'0', 10},
}

// fill writes one row of the pattern and stops as soon as f is set.
// It returns number of bytes written.
func fill(w io.Writer, row int, f *alarm.Flag) int {
	n, _ := fmt.Fprintf(w, "%d: ", row)
	for _, run := range fillerRuns {
		for i := 0; i < run.n; i++ {
			if f.IsSet() {
				return n
			}
			m, _ := w.Write([]byte{run.first + byte(i)})
			n += m
		}
	}
	m, _ := fmt.Fprintln(w)
	return n + m
}

// checkSigreturn installs SIGALRM handler, arms the timer and keeps busy
// until the handler runs, proving execution resumes after the signal returns.
func (r *Runner) checkSigreturn() int {
	rep := r.report()
	flag := &alarm.Flag{}
	handler := func() {
		if flag.IsSet() {
			return
		}
		rep.line("%s: SIGALRM delivered", CheckSigreturn)
		flag.Set()
	}

	if err := r.Platform.InstallAlarm(handler); err != nil {
		r.emit(Outcome{Check: CheckSigreturn, Err: fmt.Errorf("install handler: %w", err)})
		return 1
	}

	rep.line("%s: start", CheckSigreturn)
	armed := r.now()
	if err := r.Platform.ArmAlarm(r.Config.Alarm); err != nil {
		r.Platform.RestoreAlarm()
		r.emit(Outcome{Check: CheckSigreturn, Err: fmt.Errorf("arm timer: %w", err)})
		return 1
	}

	written := 0
	timedOut := false
	for row := 0; !flag.IsSet(); row++ {
		if r.now().Sub(armed) > r.Config.Deadline {
			if err := r.Platform.DisarmAlarm(); err != nil {
				log.Warningf("failed to disarm timer: %v", err)
			}
			timedOut = true
			break
		}
		written += fill(r.Filler, row, flag)
	}
	latency := r.now().Sub(armed)
	r.Platform.RestoreAlarm()
	if written > 0 {
		fmt.Fprintln(r.Filler)
	}
	log.Debugf("wrote %d bytes of filler while waiting for SIGALRM", written)

	// the signal may land between the deadline check and disarming
	if timedOut && !flag.IsSet() {
		r.emit(Outcome{Check: CheckSigreturn, Err: fmt.Errorf("SIGALRM not delivered within %v", r.Config.Deadline)})
		return 1
	}
	r.emit(Outcome{Check: CheckSigreturn, Passed: true, Elapsed: latency})
	rep.line("%s: done", CheckSigreturn)
	return 0
}
