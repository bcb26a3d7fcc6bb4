package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"csfmt/internal/config"
	"csfmt/internal/driver"
	"csfmt/internal/spanfmt"
)

var suppressCmd = &cobra.Command{
	Use:   "suppress [flags] <path> [path...]",
	Short: "Compute suppression spans for serialized tree dumps",
	Long:  `Suppress reads *.cstree dumps (files or directories) and prints the suppression records the line-break solver would receive`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSuppress,
}

func init() {
	suppressCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runSuppress(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	opts, err := loadFormatting(cmd)
	if err != nil {
		return err
	}
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return err
	}

	var results []driver.FileResult
	for _, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if info.IsDir() {
			dirResults, err := driver.SuppressDir(cmd.Context(), path, opts, jobs)
			if err != nil {
				return err
			}
			results = append(results, dirResults...)
			continue
		}
		tree, records, err := driver.SuppressFile(path, opts)
		results = append(results, driver.FileResult{Path: path, Tree: tree, Records: records, Err: err})
	}

	failed := 0
	pretty := spanfmt.PrettyOpts{Color: useColor(cmd, os.Stdout)}
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "csfmt: %v\n", res.Err)
			continue
		}
		switch format {
		case "pretty":
			spanfmt.Pretty(os.Stdout, res.Path, res.Tree, res.Records, pretty)
		case "json":
			if err := spanfmt.JSON(os.Stdout, res.Path, res.Tree, res.Records); err != nil {
				return err
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}
	return nil
}

func loadFormatting(cmd *cobra.Command) (config.Formatting, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Formatting{}, err
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
