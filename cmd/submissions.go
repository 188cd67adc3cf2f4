package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/secondopinion/internal/initiative"
)

var submissionsLimit int

var submissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "List recorded \"join the initiative\" submissions",
	Long: `Prints how many sign-ups were relayed, rejected by the partner endpoint or
failed to send, followed by the most recent submissions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		if database == nil {
			return fmt.Errorf("server.data_dir is empty: no submissions are recorded")
		}
		defer database.Close()

		sum, err := initiative.NewStore(database).Summarize(context.Background(), submissionsLimit)
		if err != nil {
			return fmt.Errorf("reading submissions: %w", err)
		}
		printSubmissions(os.Stdout, sum)
		return nil
	},
}

func init() {
	submissionsCmd.Flags().IntVarP(&submissionsLimit, "limit", "n", 20, "number of recent submissions to show (0 for all)")
	rootCmd.AddCommand(submissionsCmd)
}

func printSubmissions(out io.Writer, sum *initiative.Summary) {
	fmt.Fprintf(out, "relayed: %d  rejected: %d  failed: %d\n\n",
		sum.Counts[initiative.StatusRelayed],
		sum.Counts[initiative.StatusRejected],
		sum.Counts[initiative.StatusFailed],
	)

	if len(sum.Recent) == 0 {
		fmt.Fprintln(out, "No submissions recorded yet.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CREATED\tNAME\tEMAIL\tORGANIZATION\tSTATUS\tUPSTREAM")
	for _, r := range sum.Recent {
		created := "-"
		if !r.CreatedAt.IsZero() {
			created = r.CreatedAt.UTC().Format("2006-01-02 15:04")
		}
		upstream := "-"
		if r.UpstreamStatus != 0 {
			upstream = fmt.Sprintf("%d", r.UpstreamStatus)
		}
		org := r.Submission.Organization
		if org == "" {
			org = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			created, r.Submission.Name, r.Submission.Email, org, r.Status, upstream)
	}
	w.Flush()
}
