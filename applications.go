package main

import (
	"fmt"
	"memberbot/internal/adapters/store"
	"memberbot/internal/core/domain"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func applicationsCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "applications",
		Short: "Print stored membership applications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := domain.ApplicationStatus(status)
			if s != "" && !s.Valid() {
				return fmt.Errorf("unknown status %q", status)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := store.NewDB(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer store.CloseDB(db)

			apps, err := store.NewSQLite(db).List(cmd.Context(), s)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tSTATUS\tAUTHOR\tSUBMITTED\tREVIEWED BY\tLINK")
			for _, app := range apps {
				_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					app.ID, app.Status, app.AuthorName, app.SubmittedAt.Format("2006-01-02 15:04"),
					app.ReviewedBy, app.JumpURL)
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "filter by status (pending, accepted, rejected)")

	return cmd
}
