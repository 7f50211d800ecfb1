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

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/facebook/vdsocheck/clock"
)

func TestPrintSources(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printSources(&buf, clock.Sources()))
	out := buf.String()
	for _, s := range clock.Sources() {
		require.Contains(t, out, s.Name)
	}
}

func TestPersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config", "metrics-file"} {
		require.NotNil(t, RootCmd.PersistentFlags().Lookup(name), name)
	}
	// subcommands inherit them
	require.NotNil(t, sourcesCmd.InheritedFlags().Lookup("config"))
	require.NotNil(t, variantCmd.InheritedFlags().Lookup("metrics-file"))
}

func TestLoadConfigDefault(t *testing.T) {
	rootConfigFlag = ""
	cfg, err := loadConfig()
	require.NoError(t, err)
	require.Equal(t, time.Second, cfg.Alarm)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vdsocheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("alarm: 100ms\ndeadline: 2s\n"), 0644))
	rootConfigFlag = path
	defer func() { rootConfigFlag = "" }()

	cfg, err := loadConfig()
	require.NoError(t, err)
	require.Equal(t, 100*time.Millisecond, cfg.Alarm)
	require.Equal(t, 2*time.Second, cfg.Deadline)
}

func TestLoadConfigBad(t *testing.T) {
	rootConfigFlag = filepath.Join(t.TempDir(), "nope.yaml")
	defer func() { rootConfigFlag = "" }()

	_, err := loadConfig()
	require.ErrorIs(t, err, os.ErrNotExist)
}
