package commands

import (
	"fmt"

	"github.com/arthur-debert/modconflict/internal/version"
	"github.com/arthur-debert/modconflict/pkg/cobrax/topics"
	"github.com/arthur-debert/modconflict/pkg/errors"
	"github.com/arthur-debert/modconflict/pkg/filesystem"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newTopicsCmd(tm *topics.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:     "topics [topic]",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return tm.ListTopics(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				tm.WriteTopicList(cmd.OutOrStdout(), cmd.Root().Name())
				return nil
			}

			topic, ok := tm.GetTopic(args[0])
			if !ok {
				return errors.Newf(errors.ErrNotFound, MsgErrUnknownTopic, args[0])
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), tm.Render(topic))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return errors.Newf(errors.ErrInvalidInput, MsgErrShellNotKnown, args[0])
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man <dir>",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if err := filesystem.NewOS().MkdirAll(dir, 0755); err != nil {
				return errors.Wrap(err, errors.ErrDirCreate, MsgErrGenerateMan).WithDetail("dir", dir)
			}

			header := &doc.GenManHeader{
				Title:   "MODCONFLICT",
				Section: "1",
				Source:  "modconflict " + version.Version,
				Manual:  "modconflict manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, MsgErrGenerateMan).WithDetail("dir", dir)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgManPagesWritten, dir)
			return nil
		},
	}
}
