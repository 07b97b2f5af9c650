// Command relaysim drives the relay-logic simulation core from a
// document file, following the teacher's cobra+viper CLI pairing
// (other_examples/manifests/jhkimqd-chaos-utils, grafana-k6): a root
// command carrying persistent flags, subcommands for the engine's two
// externally-visible operations (run the fixed-point loop; apply one
// or more GUI interact events first). It is a thin driver over the
// engine/model/components packages, not a GUI — the canvas, terminal
// server, and command parser spec.md §1 scopes out stay external to
// this module.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/relaysim/config"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "relaysim",
		Short: "Run the relay-logic simulation core against a document file",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML/JSON/TOML engine config file")

	root.AddCommand(newRunCmd())
	root.AddCommand(newInteractCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadEngineConfig() (config.FileConfig, error) {
	return config.Load(configPath)
}
