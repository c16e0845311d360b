package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"owusu1946/portfolio-chat/config"
	"owusu1946/portfolio-chat/supabase"
)

func newStatsCmd() *cobra.Command {
	var (
		since time.Duration
		limit int
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show how often each tool was used",
		Long:  "Reads recorded turns from Supabase (SUPABASE_URL and SUPABASE_KEY) and prints a count per tool.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			settings := config.Load()

			client, err := supabase.Init(settings.SupabaseURL, settings.SupabaseKey)
			if err != nil {
				return err
			}
			activities, err := supabase.RecentActivities(client, time.Now().Add(-since), limit)
			if err != nil {
				return err
			}

			usage := supabase.ToolUsage(activities)
			names := make([]string, 0, len(usage))
			for name := range usage {
				names = append(names, name)
			}
			sort.Slice(names, func(i, j int) bool {
				if usage[names[i]] != usage[names[j]] {
					return usage[names[i]] > usage[names[j]]
				}
				return names[i] < names[j]
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d turns in the last %s\n", len(activities), since)
			for _, name := range names {
				fmt.Fprintf(out, "%-16s %d\n", name, usage[name])
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&since, "since", 24*time.Hour, "how far back to look")
	cmd.Flags().IntVar(&limit, "limit", 1000, "maximum number of turns to read")
	return cmd
}
