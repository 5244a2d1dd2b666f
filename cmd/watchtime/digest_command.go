package main

import (
	"fmt"

	"github.com/AnmolBudhewar8995/watchtime-booster/digest"
	"github.com/AnmolBudhewar8995/watchtime-booster/shared/scheduler"

	"github.com/spf13/cobra"
)

func newDigestCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "digest",
		Short: "Run the optimization digest once and email the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			agent := digest.NewAgent(cfg)
			s := scheduler.New(cfg, agent)

			fmt.Println("Running digest once...")
			if err := agent.Initialize(); err != nil {
				return fmt.Errorf("failed to initialize digest agent: %w", err)
			}
			return s.RunOnce(cmd.Context())
		},
	}
}

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the digest on its cron schedule with a health endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			agent := digest.NewAgent(cfg)
			s := scheduler.New(cfg, agent)

			fmt.Println("Starting scheduler...")
			return s.Start(cmd.Context())
		},
	}
}
