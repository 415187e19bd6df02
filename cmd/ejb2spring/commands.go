package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/config"
	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/display"
	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/fragment"
	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/resolve"
	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/scan"
)

var outputFormat string

var resolveCmd = &cobra.Command{
	Use:   "resolve [dir]",
	Short: MsgResolveShort,
	Long:  MsgResolveLong,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		scanner := scan.New(os.DirFS(dir), cfg)
		run := resolve.NewRun(resolve.Options{
			FragmentName: cfg.FragmentFile,
			ArtifactAt:   scanner.ArtifactProbe(cfg.ArtifactFile),
		})

		res, err := scanner.Populate(run)
		if err != nil {
			return err
		}
		if err := run.Commit(); err != nil {
			return err
		}

		log.Info().
			Str("dir", dir).
			Int("sourceFiles", res.SourceFiles).
			Int("fragments", res.Fragments).
			Int("decisions", len(run.Decisions())).
			Msg("Resolution completed")

		if outputFormat == "json" {
			return writeJSON(cmd.OutOrStdout(), run)
		}
		display.NewRenderer(cmd.OutOrStdout()).Report(run.Decisions(), run.Diagnostics())
		return nil
	},
}

var genconfigCmd = &cobra.Command{
	Use:   "genconfig",
	Short: MsgGenconfigShort,
	Long:  MsgGenconfigLong,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := config.GenerateDefault()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func writeJSON(out io.Writer, run *resolve.Run) error {
	report := struct {
		Decisions   map[string]string     `json:"decisions"`
		Roots       map[string][]string   `json:"detected_roots"`
		Diagnostics []fragment.Diagnostic `json:"diagnostics"`
	}{
		Decisions:   run.Decisions(),
		Roots:       run.DetectedRoots(),
		Diagnostics: run.Diagnostics(),
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func init() {
	resolveCmd.Flags().StringVar(&outputFormat, "format", "text", "Output format: text or json")
}
