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
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/facebook/vdsocheck/clock"
	"github.com/facebook/vdsocheck/variant"
)

func TestOutcomeErrno(t *testing.T) {
	require.Equal(t, 0, Outcome{}.Errno())
	require.Equal(t, 22, Outcome{Err: unix.EINVAL}.Errno())
	require.Equal(t, 1, Outcome{Err: fmt.Errorf("install handler: %w", unix.EPERM)}.Errno())
	require.Equal(t, 0, Outcome{Err: fmt.Errorf("no errno here")}.Errno())
}

func TestReportOutcome(t *testing.T) {
	tag := variant.Tag{Linkage: variant.LinkageStatic, ABI: variant.ABINarrow}
	tests := []struct {
		name    string
		outcome Outcome
		want    string
	}{
		{
			name: "getres ok",
			outcome: Outcome{
				Check:   CheckGetres,
				Source:  "CLOCK_MONOTONIC",
				Passed:  true,
				Reading: &clock.Reading{Sec: 0, Sub: 1, Unit: clock.Nanosecond},
			},
			want: "[static-ILP32] [ OK ] clock_getres: CLOCK_MONOTONIC: 0 sec, 1 ns\n",
		},
		{
			name:    "gettime fail",
			outcome: Outcome{Check: CheckGettime, Source: "CLOCK_BOOTTIME", Err: unix.EINVAL},
			want:    "[static-ILP32] [FAIL] clock_gettime: CLOCK_BOOTTIME: invalid argument (22)\n",
		},
		{
			name: "gettimeofday ok",
			outcome: Outcome{
				Check:   CheckGettimeofday,
				Passed:  true,
				Reading: &clock.Reading{Sec: 1647870300, Sub: 42, Unit: clock.Microsecond},
			},
			want: "[static-ILP32] [ OK ] gettimeofday: 1647870300 sec, 42 us\n",
		},
		{
			name:    "sigreturn ok",
			outcome: Outcome{Check: CheckSigreturn, Passed: true, Elapsed: 1500 * time.Millisecond},
			want:    "[static-ILP32] [ OK ] sigreturn: resumed after 1.5s\n",
		},
		{
			name:    "sigreturn fail without errno",
			outcome: Outcome{Check: CheckSigreturn, Err: fmt.Errorf("SIGALRM not delivered within 10s")},
			want:    "[static-ILP32] [FAIL] sigreturn: SIGALRM not delivered within 10s\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := &report{w: &buf, tag: tag}
			r.outcome(tt.outcome)
			require.Equal(t, tt.want, buf.String())
		})
	}
}
