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

package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestFlag(t *testing.T) {
	f := &Flag{}
	require.False(t, f.IsSet())
	require.True(t, f.Set())
	require.True(t, f.IsSet())
	require.False(t, f.Set())
	require.True(t, f.IsSet())
}

func TestInstallBadSignal(t *testing.T) {
	_, err := Install(unix.Signal(200), func() {})
	require.ErrorIs(t, err, unix.EINVAL)

	_, err = Install(unix.SIGALRM, nil)
	require.EqualError(t, err, "no handler for SIGALRM")
}

func TestArmBadDuration(t *testing.T) {
	require.EqualError(t, Arm(0), "alarm duration must be positive, got 0s")
	require.Error(t, Arm(-time.Second))
}

func TestRoundTrip(t *testing.T) {
	f := &Flag{}
	calls := 0
	n, err := Install(unix.SIGALRM, func() {
		calls++
		f.Set()
	})
	require.NoError(t, err)

	start := time.Now()
	require.NoError(t, Arm(20*time.Millisecond))
	for !f.IsSet() && time.Since(start) < 5*time.Second {
		time.Sleep(time.Millisecond)
	}
	n.Restore()

	require.True(t, f.IsSet())
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	// Restore waits for the handler, so reading calls is safe here
	require.Equal(t, 1, calls)
}

func TestDisarm(t *testing.T) {
	f := &Flag{}
	n, err := Install(unix.SIGALRM, func() { f.Set() })
	require.NoError(t, err)
	defer n.Restore()

	require.NoError(t, Arm(50*time.Millisecond))
	require.NoError(t, Disarm())
	time.Sleep(150 * time.Millisecond)
	require.False(t, f.IsSet())
}
