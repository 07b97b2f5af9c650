package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newInteractCmd() *cobra.Command {
	var events []string
	var shutdownTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "interact <document.json>",
		Short: "Apply one or more component interact events, then run to stability",
		Long: "Each --event is \"component_id=action\" (e.g. SW1=toggle), applied in order\n" +
			"before Run. This is the CLI's stand-in for the GUI's interact() edge\n" +
			"(spec.md §6): it is legal at any time, but here is always applied to a\n" +
			"freshly-initialized, not-yet-run engine.",
		Args: cobra.ExactArgs(1),
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

			if err := le.eng.Initialize(); err != nil {
				return fmt.Errorf("initialize: %w", err)
			}

			var touched []string
			for _, ev := range events {
				id, action, ok := strings.Cut(ev, "=")
				if !ok {
					return fmt.Errorf("malformed --event %q, want component_id=action", ev)
				}
				changed, err := le.eng.Interact(id, action, nil)
				if err != nil {
					return fmt.Errorf("interact %s: %w", ev, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "interact %s=%s changed=%v\n", id, action, changed)
				touched = append(touched, id)
			}

			stats, err := le.eng.Run()
			if err != nil {
				return fmt.Errorf("run: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "state=%s iterations=%d stable=%v\n", le.eng.State(), stats.Iterations, stats.Stable)

			for _, id := range touched {
				vs, ok := le.eng.VisualState(id)
				if !ok {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: pins=%v extra=%v\n", id, vs.PinStates, vs.Extra)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&events, "event", nil, "component_id=action, repeatable, applied in order before run")
	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 2*time.Second, "how long to wait for in-flight delayed effects at teardown")
	return cmd
}
