package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	dbf "github.com/jspreadsheet/tabularjs-sub001"
	"github.com/spf13/cobra"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <file.dbf>",
	Short: "Decode a DBF file and emit the table as JSON",
	Long: `Decode a DBF file into the spreadsheet table holder and emit it as
JSON: one sheet with typed columns, row data, and file metadata.

Example:
  dbf2sheet convert orders.dbf --pretty --out orders.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		pretty, _ := cmd.Flags().GetBool("pretty")
		opts := decodeOptions(cmd)

		data, err := dbf.Load(args[0])
		if err != nil {
			return err
		}
		start := time.Now()
		sheet, err := dbf.DecodeWithOptions(data, opts)
		if err != nil {
			return fmt.Errorf("decode %s: %w", args[0], err)
		}
		meta := sheet.Sheets[0].Meta
		slog.Info("decoded table",
			"file", args[0],
			"records", meta.ActiveRecords,
			"deleted", meta.DeletedRecords,
			"fields", len(meta.Fields),
			"charset", meta.Charset,
			"took", time.Since(start).Round(time.Microsecond))

		var buf []byte
		if pretty {
			buf, err = json.MarshalIndent(sheet, "", "  ")
		} else {
			buf, err = json.Marshal(sheet)
		}
		if err != nil {
			return err
		}
		buf = append(buf, '\n')

		if out == "" || out == "-" {
			_, err = cmd.OutOrStdout().Write(buf)
			return err
		}
		if err := os.WriteFile(out, buf, 0o644); err != nil {
			return err
		}
		slog.Info("wrote output", "path", out, "bytes", len(buf))
		return nil
	},
}

// decodeOptions merges the config profile with per-command flag overrides.
func decodeOptions(cmd *cobra.Command) dbf.DecodeOptions {
	opts := dbf.DecodeOptions{
		Encoding: cfg.Encoding,
		Workers:  cfg.Workers,
	}
	if enc, _ := cmd.Flags().GetString("encoding"); enc != "" {
		opts.Encoding = enc
	}
	if workers, _ := cmd.Flags().GetInt("workers"); workers != 0 {
		opts.Workers = workers
	}
	return opts
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("out", "o", "", "Output path (default: stdout)")
	convertCmd.Flags().Bool("pretty", false, "Indent the JSON output")
	convertCmd.Flags().String("encoding", "", "Charset override (e.g. gbk, cp1251)")
	convertCmd.Flags().Int("workers", 0, "Record decode goroutines (0 = sequential)")
}
