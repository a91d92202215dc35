package commands

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/modconflict/pkg/config"
	"github.com/arthur-debert/modconflict/pkg/errors"
	"github.com/arthur-debert/modconflict/pkg/filesystem"
	"github.com/arthur-debert/modconflict/pkg/paths"
	"github.com/spf13/cobra"
)

func newGenConfigCmd(g *globalOptions) *cobra.Command {
	var (
		write     bool
		effective bool
		force     bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := []byte(config.Template())
			if effective {
				cfg, err := g.loadConfig(changedFlags(cmd))
				if err != nil {
					return err
				}
				if content, err = config.Marshal(cfg); err != nil {
					return err
				}
			}

			if !write {
				_, _ = cmd.OutOrStdout().Write(content)
				return nil
			}

			target := paths.New().ConfigFile()
			fsys := filesystem.NewOS()
			if _, err := fsys.Stat(target); err == nil && !force {
				return errors.Newf(errors.ErrFileWrite, MsgErrConfigExists, target).
					WithDetail("path", target)
			}
			if err := fsys.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return errors.Wrap(err, errors.ErrDirCreate, MsgErrWriteConfig).
					WithDetail("path", target)
			}
			if err := fsys.WriteFile(target, content, 0644); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, MsgErrWriteConfig).
					WithDetail("path", target)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, target)
			return nil
		},
	}

	addLocationFlags(cmd)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}
