package commands

import (
	"fmt"

	"github.com/arthur-debert/modconflict/pkg/core"
	"github.com/arthur-debert/modconflict/pkg/output/styles"
	"github.com/arthur-debert/modconflict/pkg/report"
	"github.com/arthur-debert/modconflict/pkg/types"
	"github.com/arthur-debert/modconflict/pkg/ui"
	"github.com/spf13/cobra"
)

func newLayersCmd(g *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "layers",
		Short:   MsgLayersShort,
		Long:    MsgLayersLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}

			cfg, err := g.loadConfig(changedFlags(cmd))
			if err != nil {
				return err
			}

			result, err := core.ListLayers(core.FindOptions{Config: cfg})
			if err != nil {
				return err
			}
			layers := result.Registry.Layers()

			out := cmd.OutOrStdout()
			f = ui.Resolve(f, out)
			switch f {
			case ui.FormatJSON:
				data, err := report.JSON(report.Document{Layers: layers, Diagnostics: result.Diagnostics})
				if err != nil {
					return err
				}
				_, _ = out.Write(data)
				return nil
			case ui.FormatTerminal:
				for _, l := range layers {
					_, _ = fmt.Fprintln(out, styledLayer(l))
				}
			default:
				_, _ = fmt.Fprint(out, report.LayersText(layers))
			}

			printDiagnostics(cmd.ErrOrStderr(), f, result.Diagnostics)
			return nil
		},
	}

	addLocationFlags(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)

	return cmd
}

func styledLayer(l types.Layer) string {
	name := styles.GetStyle("LayerName")
	if l.Rank == types.BaseLayerRank {
		name = styles.GetStyle("Game")
	}
	return fmt.Sprintf("%s %s %s",
		styles.GetStyle("Rank").Render(fmt.Sprintf("[%d]", l.Rank)),
		name.Render(l.Name),
		styles.GetStyle("FilePath").Render(string(l.Root)))
}
