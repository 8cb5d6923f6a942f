package cmd

import (
	"fmt"

	"github.com/theirongolddev/exptrack/internal/export"
	"github.com/theirongolddev/exptrack/internal/model"

	"github.com/spf13/cobra"
)

var (
	exportFilter   model.Filter
	flagExportPath string
	flagExportFmt  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write expenses to a CSV or PDF file",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	addFilterFlags(exportCmd, &exportFilter)
	exportCmd.Flags().StringVarP(&flagExportPath, "output", "o", "", "Destination file (default from config)")
	exportCmd.Flags().StringVar(&flagExportFmt, "format", "", "csv or pdf (default: from file extension)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(flagExportFmt)
	if err != nil {
		return err
	}

	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	st, err := rt.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	records, err := st.Query(cmd.Context(), exportFilter)
	if err != nil {
		return err
	}

	path := flagExportPath
	if path == "" {
		path = rt.cfg.General.DefaultExport
	}
	if err := export.ToFile(path, records, format); err != nil {
		return err
	}

	rt.logger.Info("export written", "path", path, "records", len(records))
	if !flagQuiet {
		fmt.Printf("  Exported %d expenses to %s\n", len(records), path)
	}
	return nil
}
