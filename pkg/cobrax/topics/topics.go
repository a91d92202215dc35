// Package topics adds topic-based help to a Cobra application. Topics are
// text or markdown files read from an fs.FS, usually embedded in the
// binary, and shown through "help <topic>".
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/modconflict/pkg/errors"
	"github.com/spf13/cobra"
)

// TopicManager manages help topics for a Cobra application
type TopicManager struct {
	fsys         fs.FS
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	extensions   []string
	renderer     Renderer
}

// Topic represents a help topic
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Renderer turns raw topic content into the text to display. format is
// the topic file's extension.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer shows topics unchanged
type PlainRenderer struct{}

// Render returns content as is
func (PlainRenderer) Render(content string, format string) string {
	return content
}

// Options configures the TopicManager
type Options struct {
	// Extensions is the list of file extensions to consider as topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// New creates a new TopicManager with default extensions
func New(fsys fs.FS) *TopicManager {
	return NewWithOptions(fsys, Options{})
}

// NewWithOptions creates a new TopicManager with custom options
func NewWithOptions(fsys fs.FS, opts Options) *TopicManager {
	tm := &TopicManager{
		fsys:       fsys,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}

	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = PlainRenderer{}
	}

	return tm
}

// scanTopics loads every topic file from the filesystem
func (tm *TopicManager) scanTopics() error {
	if tm.fsys == nil {
		return nil
	}

	return fs.WalkDir(tm.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		if !tm.supported(ext) {
			return nil
		}

		content, err := fs.ReadFile(tm.fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		tm.topics[name] = &Topic{
			Name:     name,
			FilePath: p,
			Content:  string(content),
		}
		return nil
	})
}

func (tm *TopicManager) supported(ext string) bool {
	for _, validExt := range tm.extensions {
		if ext == validExt {
			return true
		}
	}
	return false
}

// GetTopic retrieves a topic by name. Flag-style names ("--format")
// also match "option-" topics.
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	if topic, exists := tm.topics[name]; exists {
		return topic, true
	}

	topic, exists := tm.topics["option-"+name]
	return topic, exists
}

// ListTopics returns all available topic names, sorted
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic with the configured renderer
func (tm *TopicManager) Render(topic *Topic) string {
	return tm.renderer.Render(topic.Content, path.Ext(topic.FilePath))
}

// WriteTopicList prints the available topics, general ones first
func (tm *TopicManager) WriteTopicList(w io.Writer, appName string) {
	names := tm.ListTopics()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(w, "No help topics available.")
		return
	}

	var options, general []string
	for _, name := range names {
		if strings.HasPrefix(name, "option-") {
			options = append(options, strings.TrimPrefix(name, "option-"))
		} else {
			general = append(general, name)
		}
	}

	_, _ = fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		_, _ = fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			_, _ = fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		_, _ = fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			_, _ = fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	_, _ = fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", appName)
}

// Initialize sets up the topic-based help system with default options
func Initialize(rootCmd *cobra.Command, fsys fs.FS) (*TopicManager, error) {
	return InitializeWithOptions(rootCmd, fsys, Options{})
}

// InitializeWithOptions replaces the root command's help command and
// help function with topic-aware versions
func InitializeWithOptions(rootCmd *cobra.Command, fsys fs.FS, opts Options) (*TopicManager, error) {
	tm := NewWithOptions(fsys, opts)

	if err := tm.scanTopics(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to scan topics")
	}

	tm.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + rootCmd.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, tm.ListTopics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				tm.originalHelp(rootCmd, []string{})
				return
			}

			if args[0] == "topics" {
				tm.WriteTopicList(cmd.OutOrStdout(), rootCmd.Name())
				return
			}

			if topic, exists := tm.GetTopic(args[0]); exists {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), tm.Render(topic))
				return
			}

			// Commands get their usual help
			target, _, err := rootCmd.Find(args)
			if err != nil || target == nil {
				tm.originalHelp(rootCmd, args)
				return
			}
			tm.originalHelp(target, args)
		},
	}

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}
	rootCmd.SetHelpCommand(helpCmd)

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if topic, exists := tm.GetTopic(args[0]); exists {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), tm.Render(topic))
				return
			}
		}
		tm.originalHelp(cmd, args)
	})

	return tm, nil
}
