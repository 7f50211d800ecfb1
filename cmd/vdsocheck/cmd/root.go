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
	"fmt"
	"os"

	"github.com/shirou/gopsutil/host"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/vdsocheck/cmd/vdsocheck/checker"
	"github.com/facebook/vdsocheck/cmd/vdsocheck/stats"
)

// RootCmd is a main entry point. Without subcommand it runs all checks.
var RootCmd = &cobra.Command{
	Use:   "vdsocheck",
	Short: "Check clock and signal syscalls of this build variant",
	Long: `Check clock and signal syscalls of this build variant.
Queries resolution and value of every supported clock source, calls gettimeofday
and takes SIGALRM through a full signal round trip. Every report line is tagged
with linkage and ABI of the binary.
Exit code is 0 if every check passed and 1 otherwise.
`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		failures, err := runHarness()
		if err != nil {
			log.Fatal(err)
		}
		if failures > 0 {
			os.Exit(1)
		}
	},
}

// flags
var (
	rootVerboseFlag     bool
	rootConfigFlag      string
	rootMetricsFileFlag string
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&rootVerboseFlag, "verbose", "v", false, "verbose output")
	RootCmd.PersistentFlags().StringVarP(&rootConfigFlag, "config", "c", "", "path to a yaml config file")
	RootCmd.PersistentFlags().StringVar(&rootMetricsFileFlag, "metrics-file", "", "write prometheus metrics of the run to this file")
}

// ConfigureVerbosity configures log verbosity based on parsed flags. Needs to be called by any subcommand.
func ConfigureVerbosity() {
	log.SetLevel(log.InfoLevel)
	if rootVerboseFlag {
		log.SetLevel(log.DebugLevel)
	}
}

func loadConfig() (*checker.Config, error) {
	if rootConfigFlag == "" {
		return checker.DefaultConfig(), nil
	}
	cfg, err := checker.ReadConfig(rootConfigFlag)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", rootConfigFlag, err)
	}
	log.Debugf("loaded config from %s", rootConfigFlag)
	return cfg, nil
}

func runHarness() (int, error) {
	cfg, err := loadConfig()
	if err != nil {
		return 0, err
	}
	r := checker.NewRunner(checker.NewSysPlatform(), cfg)
	if kernel, err := host.KernelVersion(); err != nil {
		log.Warningf("failed to get kernel version: %v", err)
	} else {
		log.Debugf("kernel %s", kernel)
		r.Kernel = kernel
	}

	var st *stats.Stats
	if rootMetricsFileFlag != "" {
		st = stats.New(r.Tag)
		r.Observe(st.Observe)
	}

	failures := r.Run()

	if st != nil {
		st.SetFailures(failures)
		if err := st.WriteTextfile(rootMetricsFileFlag); err != nil {
			log.Errorf("%v", err)
		}
	}
	return failures, nil
}

// Execute is the main entry point for CLI interface
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
