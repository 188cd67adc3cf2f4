package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/secondopinion/internal/export"
	"github.com/ziadkadry99/secondopinion/internal/progress"
)

var (
	exportOut     string
	exportInclude []string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the public pages as static HTML",
	Long: `Renders every public page with the same templates the server uses and writes
them under --out. Use --include to limit the export with glob patterns over
page names, e.g. "legal/*" or "partners/**".

The join form is not exported because it posts back to the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Gate.Enforce {
			return fmt.Errorf("refusing to export while gate.enforce is set: static files cannot carry the password gate")
		}

		site, err := newSite(cfg, nil)
		if err != nil {
			return err
		}

		e := &export.Exporter{
			OutDir:   exportOut,
			Include:  exportInclude,
			Reporter: progress.NewReporter(),
			Logger:   logger,
		}
		res, err := e.Run(context.Background(), site)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Exported %d pages and %d assets to %s\n", len(res.Pages), len(res.Assets), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "output directory")
	exportCmd.Flags().StringSliceVar(&exportInclude, "include", nil, "glob patterns of page names to export (default all)")
	rootCmd.AddCommand(exportCmd)
}
