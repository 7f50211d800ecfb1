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
	"time"

	"golang.org/x/sys/unix"

	"github.com/facebook/vdsocheck/alarm"
	"github.com/facebook/vdsocheck/clock"
)

//go:generate mockgen -source=platform.go -destination=mock_platform.go -package=checker

// Platform is the set of OS time and signal facilities under test
type Platform interface {
	ClockGetres(clockid int32) (clock.Reading, error)
	ClockGettime(clockid int32) (clock.Reading, error)
	Gettimeofday() (clock.Reading, error)
	// InstallAlarm registers h for the alarm signal
	InstallAlarm(h alarm.Handler) error
	ArmAlarm(d time.Duration) error
	DisarmAlarm() error
	// RestoreAlarm puts back the default action for the alarm signal
	RestoreAlarm()
}

// SysPlatform is the Platform of the running kernel
type SysPlatform struct {
	notifier *alarm.Notifier
}

// NewSysPlatform returns Platform backed by real syscalls
func NewSysPlatform() *SysPlatform {
	return &SysPlatform{}
}

// ClockGetres calls clock_getres
func (p *SysPlatform) ClockGetres(clockid int32) (clock.Reading, error) {
	return clock.Getres(clockid)
}

// ClockGettime calls clock_gettime
func (p *SysPlatform) ClockGettime(clockid int32) (clock.Reading, error) {
	return clock.Gettime(clockid)
}

// Gettimeofday calls gettimeofday
func (p *SysPlatform) Gettimeofday() (clock.Reading, error) {
	return clock.Gettimeofday()
}

// InstallAlarm starts delivering SIGALRM to h
func (p *SysPlatform) InstallAlarm(h alarm.Handler) error {
	n, err := alarm.Install(unix.SIGALRM, h)
	if err != nil {
		return err
	}
	p.notifier = n
	return nil
}

// ArmAlarm starts a one-shot ITIMER_REAL timer
func (p *SysPlatform) ArmAlarm(d time.Duration) error {
	return alarm.Arm(d)
}

// DisarmAlarm stops the timer
func (p *SysPlatform) DisarmAlarm() error {
	return alarm.Disarm()
}

// RestoreAlarm restores SIGALRM default action
func (p *SysPlatform) RestoreAlarm() {
	if p.notifier == nil {
		return
	}
	p.notifier.Restore()
	p.notifier = nil
}
