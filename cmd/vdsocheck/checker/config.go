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
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// Config represents configuration of the harness run
type Config struct {
	Alarm    time.Duration // one-shot timer for the signal round trip
	Deadline time.Duration // give up waiting for the signal after this long
	Settle   time.Duration // pause after the start banner
}

// DefaultConfig returns config used when no file is given
func DefaultConfig() *Config {
	return &Config{
		Alarm:    time.Second,
		Deadline: 10 * time.Second,
		Settle:   time.Second,
	}
}

// Validate makes sure config is valid
func (c *Config) Validate() error {
	if c.Alarm <= 0 {
		return fmt.Errorf("bad config: 'alarm' must be >0")
	}
	if c.Deadline <= c.Alarm {
		return fmt.Errorf("bad config: 'deadline' must be longer than 'alarm'")
	}
	if c.Settle < 0 {
		return fmt.Errorf("bad config: 'settle' must be >=0")
	}
	return nil
}

// ReadConfig reads config and unmarshals it from yaml on top of DefaultConfig
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, err
	}
	return c, c.Validate()
}
