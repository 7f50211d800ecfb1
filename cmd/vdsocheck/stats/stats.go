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

// Package stats exports outcomes of a vdsocheck run as prometheus metrics
package stats

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/facebook/vdsocheck/cmd/vdsocheck/checker"
	"github.com/facebook/vdsocheck/variant"
)

// Stats holds metrics of a single harness run
type Stats struct {
	registry *prometheus.Registry
	passed   *prometheus.GaugeVec
	value    *prometheus.GaugeVec
	failures prometheus.Gauge
	latency  prometheus.Gauge
}

// New creates Stats labeled with the variant tag
func New(tag variant.Tag) *Stats {
	labels := prometheus.Labels{"linkage": string(tag.Linkage), "abi": string(tag.ABI)}
	s := &Stats{
		registry: prometheus.NewRegistry(),
		passed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "vdsocheck_check_passed",
			Help:        "1 if the query succeeded, 0 otherwise",
			ConstLabels: labels,
		}, []string{"check", "source"}),
		value: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "vdsocheck_check_value_seconds",
			Help:        "Value returned by a successful clock query",
			ConstLabels: labels,
		}, []string{"check", "source"}),
		failures: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "vdsocheck_failures",
			Help:        "Number of failed queries in the run",
			ConstLabels: labels,
		}),
		latency: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "vdsocheck_sigreturn_latency_seconds",
			Help:        "Time between arming the timer and resuming after SIGALRM",
			ConstLabels: labels,
		}),
	}
	s.registry.MustRegister(s.passed, s.value, s.failures, s.latency)
	return s
}

// Observe records outcome of a query
func (s *Stats) Observe(o checker.Outcome) {
	passed := 0.0
	if o.Passed {
		passed = 1
	}
	s.passed.WithLabelValues(o.Check, o.Source).Set(passed)
	if !o.Passed {
		return
	}
	if o.Reading != nil {
		s.value.WithLabelValues(o.Check, o.Source).Set(o.Reading.Seconds())
	}
	if o.Check == checker.CheckSigreturn {
		s.latency.Set(o.Elapsed.Seconds())
	}
}

// SetFailures records total number of failures
func (s *Stats) SetFailures(n int) {
	s.failures.Set(float64(n))
}

// Gatherer exposes collected metrics
func (s *Stats) Gatherer() prometheus.Gatherer {
	return s.registry
}

// WriteTextfile writes metrics in text exposition format, for node_exporter textfile collector
func (s *Stats) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, s.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
