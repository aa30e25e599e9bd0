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
	"github.com/deflinhec/gamescript"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config [script]",
	Short: "Print the configuration a script resolves to",
	Long: `Runs the script's top-level code without opening a window and prints
the resulting configuration as YAML. Lifecycle functions are not called.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) (err error) {
	logger, _, err := newLogger("headless")
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg := gamescript.NewConfiguration()
	sc := gamescript.NewSharedContext(&cfg)
	path := scriptPath(args)
	engine, err := gamescript.NewEngine(path, sc, logger.With(zap.String("command", "config")))
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, engine.Close())
	}()
	if err := engine.Load(path); err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
