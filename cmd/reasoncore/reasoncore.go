// Copyright 2014 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reasoncore/core/cmd/reasoncore/command"
)

func main() {
	root := &cobra.Command{
		Use:   "reasoncore",
		Short: "The symbolic reasoning core: triple store, pattern/path query, and proof search.",
	}
	root.AddCommand(
		command.NewServeCmd(),
		command.NewQueryCmd(),
		command.NewPathCmd(),
		command.NewProveCmd(),
		command.NewLoadCmd(),
		command.NewVersionCmd(),
	)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
