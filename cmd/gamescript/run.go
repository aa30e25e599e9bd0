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
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/deflinhec/gamescript"
	"github.com/deflinhec/gamescript/backend/headless"
	"github.com/deflinhec/gamescript/backend/terminal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const defaultTerminalLog = "gamescript.log"

func scriptPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultScript
}

// newLogger builds the process logger. The terminal backend owns stdout,
// so it logs to a file unless told otherwise.
func newLogger(backend string) (*zap.Logger, zap.AtomicLevel, error) {
	level, err := zap.ParseAtomicLevel(viper.GetString("log-level"))
	if err != nil {
		return nil, level, err
	}
	output := viper.GetString("log-file")
	if output == "" {
		output = "stderr"
		if backend == "terminal" {
			output = defaultTerminalLog
		}
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.OutputPaths = []string{output}
	cfg.ErrorOutputPaths = []string{output}
	logger, err := cfg.Build()
	return logger, level, err
}

func newBackend(name string, logger *zap.Logger) (gamescript.Backend, error) {
	switch name {
	case "terminal":
		return terminal.New(
			terminal.WithLogger(logger),
			terminal.WithFPS(viper.GetInt("fps")),
		), nil
	case "headless":
		return headless.New(headless.WithLogger(logger)), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want terminal or headless)", name)
	}
}

func runGame(cmd *cobra.Command, args []string) (err error) {
	name := viper.GetString("backend")
	logger, level, err := newLogger(name)
	if err != nil {
		return err
	}
	defer logger.Sync()

	backend, err := newBackend(name, logger)
	if err != nil {
		return err
	}
	game, err := gamescript.NewGame(scriptPath(args), backend,
		gamescript.WithLogger(logger),
		gamescript.WithLevel(level),
		gamescript.WithMaxFrames(viper.GetInt("frames")),
	)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, game.Close())
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := game.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("Game finished", zap.Int("frames", game.Frames()))
	return nil
}
