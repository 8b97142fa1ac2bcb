package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"revtrain/internal/badges"
	"revtrain/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the points leaderboard and per-user progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		if user != "" {
			return printUserStats(ctx, s.EventRepo(), user)
		}

		rows, err := s.EventRepo().Leaderboard(ctx, limit)
		if err != nil {
			return fmt.Errorf("query leaderboard: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Printf("%-4s  %-36s  %8s  %8s  %6s\n", "#", "User", "Points", "Sessions", "Badges")
		fmt.Println(strings.Repeat("─", 72))
		for i, row := range rows {
			fmt.Printf("%-4d  %-36s  %8d  %8d  %6d\n", i+1, row.UserID, row.Points, row.Sessions, row.Badges)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("user", "", "Show detailed stats for one user ID")
	statsCmd.Flags().Int("limit", 10, "Number of leaderboard rows")
}

func printUserStats(ctx context.Context, repo store.EventRepo, user string) error {
	stats, err := repo.StatsFor(ctx, user)
	if err != nil {
		return fmt.Errorf("query user stats: %w", err)
	}

	fmt.Printf("User:           %s\n", stats.UserID)
	fmt.Printf("Points:         %d\n", stats.Points)
	fmt.Printf("Sessions:       %d\n", stats.Sessions)
	fmt.Printf("Reviews graded: %d\n", stats.ReviewsGraded)
	fmt.Printf("Best accuracy:  %.1f%%\n", stats.BestAccuracy)

	if len(stats.Badges) > 0 {
		fmt.Println("\nBadges")
		fmt.Println(strings.Repeat("─", 40))
		for _, id := range stats.Badges {
			fmt.Printf("  %s\n", badges.BadgeName(id))
		}
	}

	categories, err := repo.CategoryStatsFor(ctx, user)
	if err != nil {
		return fmt.Errorf("query category stats: %w", err)
	}
	if len(categories) > 0 {
		fmt.Println("\nAccuracy by Category")
		fmt.Println(strings.Repeat("─", 56))
		fmt.Printf("%-24s  %10s  %10s  %6s\n", "Category", "Seen", "Found", "Rate")
		for _, c := range categories {
			rate := 0.0
			if c.Encountered > 0 {
				rate = float64(c.Identified) / float64(c.Encountered) * 100.0
			}
			fmt.Printf("%-24s  %10d  %10d  %5.1f%%\n", c.Category, c.Encountered, c.Identified, rate)
		}
	}
	return nil
}
