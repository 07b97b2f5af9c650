package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var shutdownTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "run <document.json>",
		Short: "Initialize and run the fixed-point loop to stability, oscillation, or timeout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadEngineConfig()
			if err != nil {
				return err
			}
			le, err := buildEngine(args[0], cfg)
			if err != nil {
				return err
			}
			defer le.close(shutdownTimeout)

			for _, w := range le.eng.Warnings() {
				fmt.Fprintln(cmd.OutOrStdout(), "warning:", w)
			}

			if err := le.eng.Initialize(); err != nil {
				return fmt.Errorf("initialize: %w", err)
			}
			stats, err := le.eng.Run()
			if err != nil {
				return fmt.Errorf("run: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "state=%s iterations=%d components_updated=%d stable=%v oscillating=%v timeout=%v errors=%d\n",
				le.eng.State(), stats.Iterations, stats.ComponentsUpdated, stats.Stable, stats.MaxIterationsReached, stats.TimeoutReached, stats.ComponentErrors)
			return nil
		},
	}
	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 2*time.Second, "how long to wait for in-flight delayed effects at teardown")
	return cmd
}
