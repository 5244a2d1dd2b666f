package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/AnmolBudhewar8995/watchtime-booster/internal/duration"
	"github.com/AnmolBudhewar8995/watchtime-booster/internal/models"
	"github.com/AnmolBudhewar8995/watchtime-booster/ranker"

	"github.com/spf13/cobra"
)

func newRankCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var maxVideos int64

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank your channel's uploads by lost watch-time potential",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			client, err := ctx.ensureClient()
			if err != nil {
				return err
			}

			if maxVideos == 0 {
				maxVideos = int64(cfg.Analysis.MaxVideos)
			}

			videos, err := client.FetchChannelUploads(cmd.Context(), maxVideos)
			if err != nil {
				return err
			}
			if len(videos) == 0 {
				fmt.Println("No uploads found.")
				return nil
			}

			if err := client.AnnotateAverageViewDurations(cmd.Context(), videos, cfg.Analysis.AnalyticsWindowDays); err != nil {
				log.Printf("Warning: analytics unavailable, using fallback ranking: %v", err)
			}

			ranked := ranker.Rank(videos)

			if jsonOutput {
				return json.NewEncoder(os.Stdout).Encode(ranked)
			}

			printRanked(ranked)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the ranking as JSON")
	cmd.Flags().Int64Var(&maxVideos, "max", 0, "Maximum number of uploads to rank")

	return cmd
}

func printRanked(ranked []*models.RankedVideo) {
	mode := ranked[0].Mode
	potentialHeader := "Potential Watch-Seconds"
	if mode == models.RankModeFallback {
		potentialHeader = "Potential Score"
	}

	headers := []string{"#", "Title", "Views", "Duration", potentialHeader}
	rows := make([][]string, 0, len(ranked))
	for i, rv := range ranked {
		potential := strconv.FormatFloat(rv.PotentialWatchSeconds, 'f', 0, 64)
		if mode == models.RankModeFallback {
			potential = strconv.FormatFloat(rv.PotentialScore, 'f', 2, 64)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			truncate(rv.Video.Title, 50),
			strconv.FormatInt(rv.Video.Views, 10),
			duration.Format(rv.Video.DurationSeconds),
			potential,
		})
	}

	aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight}
	fmt.Println(renderTable(headers, rows, aligns))

	if mode == models.RankModeFallback {
		fmt.Println("\nNote: no retention data available; ranking by views per runtime second.")
	}
}

// truncate shortens s to at most maxLen characters, cutting on a rune
// boundary so multi-byte titles stay valid UTF-8.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
