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

// gamescript runs a game written in a scripting language.
//
// Usage:
//
//	gamescript [script]         - Run a script (default: game.lua)
//	gamescript kinds            - List supported script kinds
//	gamescript config [script]  - Print the configuration a script resolves to
//
// Global flags:
//
//	--backend <name>    - terminal or headless (default: terminal)
//	--frames <n>        - Stop after n frames (0 = until quit)
//	--fps <rate>        - Terminal frame rate cap (default: 30)
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Log destination (terminal backend default: gamescript.log)
//	--config <path>     - Settings file; GAMESCRIPT_* variables override it
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultScript = "game.lua"

var cfgFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gamescript [script]",
	Short: "Run a game whose logic lives in a script",
	Long: `gamescript hosts the window and the frame loop, and calls into a script
for configuration and the create, update, render and destroy steps.

The interpreter is picked by file extension. Scripts talk to the host
through the engine namespace:

  engine.init(config)              override configuration keys
  engine.getScreenWidth()          window width in pixels
  engine.getScreenHeight()         window height in pixels
  engine.drawCircle(x, y, radius)  draw a filled circle

Examples:
  gamescript game.lua
  gamescript --backend headless --frames 120 game.star
  gamescript config game.js`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "settings file (default is $HOME/.gamescript.yaml)")
	flags.String("backend", "terminal", "render backend: terminal or headless")
	flags.Int("frames", 0, "stop after this many frames (0 = until quit)")
	flags.Int("fps", 30, "terminal frame rate cap")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-file", "", "log destination path")
	for _, name := range []string{"backend", "frames", "fps", "log-level", "log-file"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfig reads in the settings file and environment variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".gamescript")
	}

	viper.SetEnvPrefix("gamescript")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
