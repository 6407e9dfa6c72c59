package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mauv0809/tennis-directory/internal/player"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(cmd, "/health")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(cmd, "/metrics")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players [query]",
	Short: "List players, filtered by name, location or membership",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		result, err := newClient().Players(cmd.Context(), query)
		if err != nil {
			return err
		}
		printPlayers(cmd.OutOrStdout(), result)
		return nil
	},
}

var playerCmd = &cobra.Command{
	Use:   "player <id>",
	Short: "Show a player's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newClient().Player(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printPlayer(cmd.OutOrStdout(), p)
		return nil
	},
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show app settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := newClient().Settings(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), page)
		return nil
	},
}

func performGetRequest(cmd *cobra.Command, endpoint string) error {
	fmt.Printf("Making request to %s\n", host+endpoint)

	resp, err := newClient().Get(cmd.Context(), endpoint)
	if err != nil {
		return err
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(resp.Body))

	return nil
}

func printPlayers(w io.Writer, result player.SearchResult) {
	fmt.Fprintln(w, result.Summary)
	if result.Count == 0 {
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLOCATION\tMEMBERSHIP\tRANK")
	for _, p := range result.Players {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t#%d\n", p.ID, p.Name, p.Location, p.MembershipType, p.Ranking)
	}
	tw.Flush()
}

func printPlayer(w io.Writer, p player.Player) {
	fmt.Fprintln(w, p.Name)
	fmt.Fprintln(w, strings.Repeat("=", len(p.Name)))
	fmt.Fprintf(w, "Location:       %s\n", p.Location)
	fmt.Fprintf(w, "Membership:     %s\n", p.MembershipType)
	fmt.Fprintf(w, "Ranking:        #%d\n", p.Ranking)
	fmt.Fprintf(w, "Win rate:       %.0f%%\n", p.WinRate)
	fmt.Fprintf(w, "Matches played: %d\n", p.MatchesPlayed)
}
