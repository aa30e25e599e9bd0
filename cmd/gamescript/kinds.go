// Copyright 2023 Deflinhec
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/deflinhec/gamescript"
	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List supported script kinds",
	Long:  `Shows every scripting language compiled in, with the file extensions it handles.`,
	Run:   runKinds,
}

func runKinds(cmd *cobra.Command, args []string) {
	kinds := gamescript.Kinds()
	out := cmd.OutOrStdout()

	maxNameLen := len("Kind")
	for _, k := range kinds {
		if len(k.Name) > maxNameLen {
			maxNameLen = len(k.Name)
		}
	}
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Kind", "Extensions")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "----------")
	for _, k := range kinds {
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, k.Name, strings.Join(k.Extensions, ", "))
	}
}
