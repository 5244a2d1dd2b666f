package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/AnmolBudhewar8995/watchtime-booster/cluster"
	"github.com/AnmolBudhewar8995/watchtime-booster/shared/ai"

	"github.com/spf13/cobra"
)

func newPlaylistsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var clusters int
	var topPerCluster int

	cmd := &cobra.Command{
		Use:   "playlists",
		Short: "Group your uploads into semantic clusters for playlist suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			client, err := ctx.ensureClient()
			if err != nil {
				return err
			}

			if clusters == 0 {
				clusters = cfg.Analysis.Clusters
			}
			if topPerCluster == 0 {
				topPerCluster = cfg.Analysis.PlaylistSize
			}

			videos, err := client.FetchChannelUploads(cmd.Context(), int64(cfg.Analysis.MaxVideos))
			if err != nil {
				return err
			}
			if len(videos) == 0 {
				fmt.Println("No uploads found.")
				return nil
			}

			embedder, err := ai.NewGeminiEmbedder(cfg)
			if err != nil {
				return err
			}

			engine := cluster.New(embedder)
			clustered, err := engine.Cluster(cmd.Context(), videos, clusters)
			if err != nil {
				return err
			}

			playlists := cluster.Playlists(clustered, topPerCluster)

			if jsonOutput {
				return json.NewEncoder(os.Stdout).Encode(playlists)
			}

			titles := make(map[string]string, len(videos))
			for _, v := range videos {
				titles[v.ID] = v.Title
			}

			for _, playlist := range playlists {
				fmt.Printf("Playlist %d (%d videos)\n", playlist.Cluster+1, len(playlist.VideoIDs))
				rows := make([][]string, 0, len(playlist.VideoIDs))
				for i, id := range playlist.VideoIDs {
					rows = append(rows, []string{strconv.Itoa(i + 1), truncate(titles[id], 60), id})
				}
				fmt.Println(renderTable([]string{"#", "Title", "Video ID"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft}))
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the playlists as JSON")
	cmd.Flags().IntVar(&clusters, "clusters", 0, "Target number of clusters")
	cmd.Flags().IntVar(&topPerCluster, "top", 0, "Videos per suggested playlist")

	return cmd
}
