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
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/vdsocheck/clock"
)

func init() {
	RootCmd.AddCommand(sourcesCmd)
}

func printSources(w io.Writer, sources []clock.Source) error {
	table := tablewriter.NewWriter(w)
	table.Header("name", "id", "since")
	for _, s := range sources {
		if err := table.Append([]string{s.Name, fmt.Sprintf("%d", s.ID), s.Since}); err != nil {
			return err
		}
	}
	return table.Render()
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Print clock sources checked by vdsocheck",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		if err := printSources(os.Stdout, clock.Sources()); err != nil {
			log.Fatal(err)
		}
	},
}
