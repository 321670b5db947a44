package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"eurobot-backend/internal/auth"
	"eurobot-backend/internal/client"
	"eurobot-backend/internal/database/models"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	baseURL string
	token   string
	timeout time.Duration
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "eurobot",
		Short:         "Browse Eurobot results from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&opts.baseURL, "api", envOr("EUROBOT_API_URL", client.DefaultBaseURL), "API base URL")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("EUROBOT_ADMIN_TOKEN"), "admin bearer token")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")

	root.AddCommand(
		newStatsCmd(opts),
		newTeamsCmd(opts),
		newTeamCmd(opts),
		newMatchesCmd(opts),
		newRankingsCmd(opts),
		newSeriesCmd(opts),
		newReseedCmd(opts),
		newHealthCmd(opts),
		newTokenCmd(),
	)
	return root
}

func (o *rootOptions) client() *client.Client {
	var opts []client.Option
	if o.token != "" {
		opts = append(opts, client.WithToken(o.token))
	}
	return client.New(o.baseURL, opts...)
}

func (o *rootOptions) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), o.timeout)
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard totals and the current top teams",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			stats, err := opts.client().Stats(ctx)
			if err != nil {
				return err
			}

			w := newTable(cmd.OutOrStdout())
			fmt.Fprintf(w, "Teams\t%d\n", stats.TotalTeams)
			fmt.Fprintf(w, "Matches\t%d\n", stats.TotalMatches)
			fmt.Fprintf(w, "Rankings\t%d\n", stats.TotalRankings)
			fmt.Fprintf(w, "Series\t%d\n", stats.TotalSeries)
			for _, bucket := range stats.MatchesBySerie {
				fmt.Fprintf(w, "  Serie %d\t%d matches\n", bucket.Serie, bucket.Count)
			}
			fmt.Fprintf(w, "\nTop teams (serie %d)\n", stats.LastKnownSerie)
			writeRankings(w, stats.TopTeams)
			return w.Flush()
		},
	}
}

func newTeamsCmd(opts *rootOptions) *cobra.Command {
	var search, origin string
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List teams",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			teams, err := opts.client().Teams(ctx)
			if err != nil {
				return err
			}
			teams = client.FilterTeams(teams, search, origin)

			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "NAME\tSTAND\tORIGIN")
			for _, t := range teams {
				fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name, t.Stand, t.Origin)
			}
			fmt.Fprintf(w, "\n%d teams\n", len(teams))
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "substring of name or stand")
	cmd.Flags().StringVar(&origin, "origin", "all", "exact origin, or all")
	return cmd
}

func newTeamCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "team <name>",
		Short: "Show one team's matches and results per serie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			c := opts.client()
			name := args[0]
			matches, err := c.TeamMatches(ctx, name)
			if err != nil {
				return err
			}
			rankings, err := c.Rankings(ctx, 0)
			if err != nil {
				return err
			}
			perf := client.TeamPerformance(name, matches, rankings)

			w := newTable(cmd.OutOrStdout())
			fmt.Fprintf(w, "%s\tW %d / D %d / L %d\tpoints %d (avg %.1f)\n",
				perf.Team, perf.Wins, perf.Draws, perf.Losses, perf.TotalPoints, perf.AveragePoints)
			fmt.Fprintln(w, "\nSERIE\tMATCHES\tPOINTS\tPOSITION")
			for _, s := range perf.BySerie {
				pos := "-"
				if s.Position > 0 {
					pos = strconv.Itoa(s.Position)
				}
				fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", s.Serie, s.Matches, s.Points, pos)
			}
			fmt.Fprintln(w)
			writeMatches(w, matches)
			return w.Flush()
		},
	}
}

func newMatchesCmd(opts *rootOptions) *cobra.Command {
	var serie int
	var search string
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "List matches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			matches, err := opts.client().Matches(ctx, serie)
			if err != nil {
				return err
			}
			matches = client.FilterMatches(matches, search)

			w := newTable(cmd.OutOrStdout())
			writeMatches(w, matches)
			if best, top := client.HighestScore(matches); len(top) > 0 {
				fmt.Fprintf(w, "\nHighest score %d in %d match(es)\n", best, len(top))
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&serie, "serie", 0, "serie number, 0 for all")
	cmd.Flags().StringVar(&search, "search", "", "substring of match number, team name or stand")
	return cmd
}

func newRankingsCmd(opts *rootOptions) *cobra.Command {
	var serie int
	var sortKey string
	var desc bool
	cmd := &cobra.Command{
		Use:   "rankings",
		Short: "List rankings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			rankings, err := opts.client().Rankings(ctx, serie)
			if err != nil {
				return err
			}
			rankings = client.SortRankings(rankings, sortKey, desc)

			w := newTable(cmd.OutOrStdout())
			writeRankings(w, rankings)
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&serie, "serie", 0, "serie number, 0 for all")
	cmd.Flags().StringVar(&sortKey, "sort", client.SortByPosition, "position, points, victories, matchesPlayed or name")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	return cmd
}

func newSeriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "series",
		Short: "List series",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			series, err := opts.client().Series(ctx)
			if err != nil {
				return err
			}

			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "#\tNAME\tSTATUS\tSTART\tTEAMS\tMATCHES\tLIVESTREAM")
			for _, s := range series {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%s\n",
					s.SerieNumber, s.Name, s.Status, s.StartDate.Format("2006-01-02"),
					s.TotalTeams, s.TotalMatches, s.LiveStreamURL)
			}
			return w.Flush()
		},
	}
}

func newReseedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reseed",
		Short: "Ask the server to reload its CSV exports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// ingestion can outlast the default request timeout
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			resp, err := opts.client().Reseed(ctx)
			if err != nil {
				return err
			}

			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, resp.Message)
			if r := resp.Report; r != nil {
				fmt.Fprintf(w, "Series\t%d\n", r.SeriesWritten)
				fmt.Fprintf(w, "Teams\t%d\n", r.Teams)
				fmt.Fprintf(w, "Matches\t%d\n", r.Matches)
				fmt.Fprintf(w, "Rankings\t%d\n", r.Rankings)
				fmt.Fprintf(w, "Skipped rows\t%d\n", len(r.Skipped))
				fmt.Fprintf(w, "Warnings\t%d\n", len(r.Warnings))
				for _, e := range r.Errors {
					fmt.Fprintf(w, "Error\t%s\n", e)
				}
			}
			return w.Flush()
		},
	}
}

func newHealthCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API and database health",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			health, err := opts.client().Health(ctx)
			if err != nil {
				return err
			}
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintf(w, "status\t%s\n", health.Status)
			for name, state := range health.Services {
				fmt.Fprintf(w, "%s\t%s\n", name, state)
			}
			return w.Flush()
		},
	}
}

func newTokenCmd() *cobra.Command {
	var secret, subject string
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin token for the configured ADMIN_JWT_SECRET",
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := auth.NewService(secret).GenerateToken(subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "secret", os.Getenv("ADMIN_JWT_SECRET"), "shared HS256 secret")
	cmd.Flags().StringVar(&subject, "subject", "cli", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func writeMatches(w io.Writer, matches []models.Match) {
	fmt.Fprintln(w, "SERIE\t#\tTEAM 1\tSCORE\tTEAM 2\tWINNER")
	for _, m := range matches {
		fmt.Fprintf(w, "%d\t%d\t%s (%s)\t%d - %d\t%s (%s)\t%s\n",
			m.Serie, m.MatchNumber,
			m.Team1.Name, m.Team1.Stand,
			m.Team1.Score, m.Team2.Score,
			m.Team2.Name, m.Team2.Stand,
			m.Winner)
	}
}

func writeRankings(w io.Writer, rankings []models.Ranking) {
	fmt.Fprintln(w, "SERIE\tPOS\tTEAM\tSTAND\tORIGIN\tPTS\tJ\tV\tN\tD")
	for _, r := range rankings {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			r.Serie, r.Position, r.Team.Name, r.Team.Stand, r.Team.Origin,
			r.Points, r.MatchesPlayed, r.Victories, r.Draws, r.Defeats)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
