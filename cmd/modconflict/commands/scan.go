package commands

import (
	"fmt"
	"io"

	"github.com/arthur-debert/modconflict/pkg/core"
	"github.com/arthur-debert/modconflict/pkg/filesystem"
	"github.com/arthur-debert/modconflict/pkg/logging"
	"github.com/arthur-debert/modconflict/pkg/report"
	"github.com/arthur-debert/modconflict/pkg/types"
	"github.com/arthur-debert/modconflict/pkg/ui"
	"github.com/spf13/cobra"
)

// locationFlags maps the flags naming directories to their config keys
var locationFlags = []struct {
	name, key, usage string
}{
	{"game", "game.path", MsgFlagGame},
	{"workshop", "game.workshop_path", MsgFlagWorkshop},
	{"user-data", "game.user_data_path", MsgFlagUserData},
}

func addLocationFlags(cmd *cobra.Command) {
	for _, f := range locationFlags {
		cmd.Flags().String(f.name, "", f.usage)
	}
}

// changedFlags collects the explicitly set location flags by config key
func changedFlags(cmd *cobra.Command) map[string]interface{} {
	flags := make(map[string]interface{})
	for _, f := range locationFlags {
		if cmd.Flags().Changed(f.name) {
			value, _ := cmd.Flags().GetString(f.name)
			flags[f.key] = value
		}
	}
	return flags
}

func newScanCmd(g *globalOptions) *cobra.Command {
	var (
		outputDir       string
		exclusionsFile  string
		noIntermediates bool
		format          string
	)

	cmd := &cobra.Command{
		Use:     "scan",
		Short:   MsgScanShort,
		Long:    MsgScanLong,
		Example: MsgScanExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.scan")

			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}

			flags := changedFlags(cmd)
			if cmd.Flags().Changed("output-dir") {
				flags["output.dir"] = outputDir
			}
			if cmd.Flags().Changed("exclusions") {
				flags["scan.exclusions_file"] = exclusionsFile
			}
			if noIntermediates {
				flags["output.write_intermediates"] = false
			}

			cfg, err := g.loadConfig(flags)
			if err != nil {
				return err
			}

			fsys := filesystem.NewOS()
			result, err := core.FindConflicts(core.FindOptions{FS: fsys, Config: cfg})
			if err != nil {
				return err
			}
			doc := result.Document()

			out := cmd.OutOrStdout()
			f = ui.Resolve(f, out)
			if err := printResult(out, f, doc); err != nil {
				return err
			}
			printDiagnostics(cmd.ErrOrStderr(), f, result.Diagnostics)

			written, err := report.WriteFiles(fsys, report.Output{
				Dir:           cfg.Output.Dir,
				SummaryFile:   cfg.Output.SummaryFile,
				Intermediates: cfg.Output.WriteIntermediates,
			}, doc)
			if err != nil {
				return err
			}
			for _, p := range written {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), MsgWroteFile, p)
			}

			logger.Info().
				Int("conflicts", len(result.Conflicts)).
				Int("files", len(written)).
				Msg("Scan complete")
			return nil
		},
	}

	addLocationFlags(cmd)
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", MsgFlagOutputDir)
	cmd.Flags().StringVar(&exclusionsFile, "exclusions", "", MsgFlagExclusions)
	cmd.Flags().BoolVar(&noIntermediates, "no-intermediates", false, MsgFlagNoIntermediates)
	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)

	return cmd
}

func printResult(out io.Writer, f ui.Format, doc report.Document) error {
	switch f {
	case ui.FormatJSON:
		data, err := report.JSON(doc)
		if err != nil {
			return err
		}
		_, _ = out.Write(data)
	case ui.FormatTerminal:
		_, _ = fmt.Fprint(out, report.Styled(doc.Conflicts, doc.Summary))
	default:
		_, _ = fmt.Fprint(out, report.Text(doc.Conflicts, doc.Summary))
	}
	return nil
}

// printDiagnostics reports skipped layers and roots on w. JSON output
// already carries them.
func printDiagnostics(w io.Writer, f ui.Format, diags []types.Diagnostic) {
	if len(diags) == 0 || f == ui.FormatJSON {
		return
	}

	_, _ = fmt.Fprintf(w, MsgDiagnostics, len(diags))
	if f == ui.FormatTerminal {
		_, _ = fmt.Fprint(w, report.StyledDiagnostics(diags))
		return
	}
	_, _ = fmt.Fprint(w, report.DiagnosticsText(diags))
}
