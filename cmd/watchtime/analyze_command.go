package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/AnmolBudhewar8995/watchtime-booster/analyzer"
	"github.com/AnmolBudhewar8995/watchtime-booster/internal/duration"
	"github.com/AnmolBudhewar8995/watchtime-booster/internal/models"
	"github.com/AnmolBudhewar8995/watchtime-booster/youtube"

	"github.com/spf13/cobra"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var advanced bool

	cmd := &cobra.Command{
		Use:   "analyze <url>",
		Short: "Analyze a single video's watch-time optimization potential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			videoID, ok := youtube.ExtractVideoID(args[0])
			if !ok {
				return fmt.Errorf("invalid YouTube URL: %s", args[0])
			}

			client, err := ctx.ensureClient()
			if err != nil {
				return err
			}

			video, err := client.FetchVideo(cmd.Context(), videoID)
			if err != nil {
				return err
			}

			analysis := analyzer.Analyze(video)

			if jsonOutput {
				return json.NewEncoder(os.Stdout).Encode(analysis)
			}

			printAnalysis(analysis, advanced)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the analysis as JSON")
	cmd.Flags().BoolVar(&advanced, "advanced", false, "Include the per-category suggestion breakdown")

	return cmd
}

func printAnalysis(analysis *models.Analysis, advanced bool) {
	video := analysis.Video

	fmt.Println("📊 Video Information")
	fmt.Println(renderKeyValues([][2]string{
		{"Title", video.Title},
		{"Channel", video.ChannelTitle},
		{"Duration", duration.Format(video.DurationSeconds)},
		{"Published", formatPublished(video)},
		{"Views", strconv.FormatInt(video.Views, 10)},
		{"Likes", strconv.FormatInt(video.Likes, 10)},
		{"Comments", strconv.FormatInt(video.Comments, 10)},
	}))

	fmt.Println()
	fmt.Println("⏱️  Watch Time Analysis")
	fmt.Println(renderKeyValues([][2]string{
		{"Optimization Score", fmt.Sprintf("%d/100", analysis.Score)},
		{"Engagement Rate", fmt.Sprintf("%.2f%%", analysis.EngagementRatePercent)},
		{"Current Watch Time", fmt.Sprintf("%d seconds", analysis.CurrentWatchTime)},
		{"Est. Avg Watch Time", fmt.Sprintf("%d seconds", analysis.EstimatedAvgWatch)},
		{"Potential Improvement", fmt.Sprintf("+%d seconds", analysis.PotentialImprovement)},
	}))

	fmt.Println()
	fmt.Println("💡 Optimization Suggestions")
	for i, suggestion := range analysis.Suggestions {
		fmt.Printf("%d. %s\n", i+1, suggestion)
	}

	if advanced {
		fmt.Println()
		fmt.Println("🔎 Category Breakdown")
		for _, category := range analysis.Advanced.Categories() {
			if len(category.Items) == 0 {
				continue
			}
			fmt.Printf("\n[%s]\n", category.Name)
			for _, item := range category.Items {
				fmt.Printf("  • %s\n", item)
			}
		}
	}

	fmt.Println()
	fmt.Println("🎯 Action Items")
	for _, item := range analysis.ActionItems {
		fmt.Printf("• %s\n", item)
	}
}

func formatPublished(video *models.Video) string {
	if !video.HasPublishedAt() {
		return "Unknown"
	}
	return video.PublishedAt.Format("January 2, 2006")
}
