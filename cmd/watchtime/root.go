package main

import (
	"fmt"

	"github.com/AnmolBudhewar8995/watchtime-booster/shared/config"
	"github.com/AnmolBudhewar8995/watchtime-booster/youtube"

	"github.com/spf13/cobra"
)

// commandContext lazily loads configuration and the YouTube client so that
// commands share one of each.
type commandContext struct {
	configFlag *string

	cfg    *config.Config
	client *youtube.Client
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}

	var (
		cfg *config.Config
		err error
	)
	if *c.configFlag != "" {
		cfg, err = config.LoadFile(*c.configFlag)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) ensureClient() (*youtube.Client, error) {
	if c.client != nil {
		return c.client, nil
	}

	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	client, err := youtube.NewClient(&cfg.YouTube)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube client: %w", err)
	}

	c.client = client
	return client, nil
}

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := &commandContext{configFlag: &configFlag}

	rootCmd := &cobra.Command{
		Use:           "watchtime",
		Short:         "Analyze and optimize watch time for YouTube videos",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newAnalyzeCommand(ctx))
	rootCmd.AddCommand(newRankCommand(ctx))
	rootCmd.AddCommand(newPlaylistsCommand(ctx))
	rootCmd.AddCommand(newDigestCommand(ctx))
	rootCmd.AddCommand(newServeCommand(ctx))

	return rootCmd
}
