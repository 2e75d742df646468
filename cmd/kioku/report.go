package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/kioku/internal/report"
	"github.com/at-ishikawa/kioku/internal/statistics"
)

func newReportCommand() *cobra.Command {
	var subjectID string
	var year, month int
	var generatePDF bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a markdown progress report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			db, repos, err := openRepositories(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()
			service, err := newService(cfg, repos)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			overview, err := service.Overview(ctx, subjectID)
			if err != nil {
				return fmt.Errorf("Overview(%s) > %w", subjectID, err)
			}
			history, err := service.History(ctx)
			if err != nil {
				return fmt.Errorf("History() > %w", err)
			}
			activity := statistics.ActivityByMonth(history, service.Location(), year, month)

			data := report.NewData(overview, activity, service.Location())
			path, err := report.WriteFile(cfg.Report.Directory, cfg.Report.Template, data)
			if err != nil {
				return fmt.Errorf("report.WriteFile() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)

			if generatePDF {
				pdfPath, err := report.ConvertToPDF(path)
				if err != nil {
					return fmt.Errorf("report.ConvertToPDF() > %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "PDF written to %s\n", pdfPath)
			}
			return nil
		},
	}
	addSubjectFlag(cmd.Flags(), &subjectID, "subject to report on, all subjects when empty")
	cmd.Flags().IntVar(&year, "year", 0, "only include activity of this year")
	cmd.Flags().IntVar(&month, "month", 0, "only include activity of this month (1-12)")
	cmd.Flags().BoolVar(&generatePDF, "pdf", false, "also convert the report to PDF")
	return cmd
}
