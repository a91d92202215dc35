package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Find files that mods override in each other and in the game"
	MsgScanShort       = "Scan the load order and report file conflicts"
	MsgLayersShort     = "List the layers built from the load order"
	MsgGenConfigShort  = "Print or write the configuration file"
	MsgTopicsShort     = "List all topics or show help for a topic"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages into a directory"

	// Status messages
	MsgWroteFile       = "Wrote %s\n"
	MsgConfigWritten   = "Wrote configuration to %s\n"
	MsgDiagnostics     = "\n%d layer(s) or file(s) were skipped:\n"
	MsgVersionFormat   = "modconflict version %s\n"
	MsgCommitFormat    = "  commit: %s\n"
	MsgBuiltFormat     = "  built:  %s\n"
	MsgManPagesWritten = "Man pages written to %s\n"

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrUnknownTopic  = "unknown topic %q, run 'modconflict topics' for the list"
	MsgErrConfigExists  = "%s already exists, use --force to replace it"
	MsgErrLoadStyles    = "failed to load styles"
	MsgErrWriteConfig   = "failed to write configuration"
	MsgErrGenerateMan   = "failed to generate man pages"
	MsgErrShellNotKnown = "unknown shell %q"

	// Flag descriptions
	MsgFlagVerbose         = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig          = "Config file (default is $XDG_CONFIG_HOME/modconflict/config.toml)"
	MsgFlagGame            = "Game directory, the base layer"
	MsgFlagWorkshop        = "Workshop content directory"
	MsgFlagUserData        = "User data directory holding the load order and mod descriptors"
	MsgFlagOutputDir       = "Directory for the summary and the JSON dumps"
	MsgFlagExclusions      = "File listing path substrings to leave out of the scan"
	MsgFlagNoIntermediates = "Write only the summary, without the JSON dumps"
	MsgFlagFormat          = "Output format: auto, term, text or json"
	MsgFlagWrite           = "Write to the user config file instead of stdout"
	MsgFlagEffective       = "Print the effective configuration instead of the commented template"
	MsgFlagForce           = "Replace an existing config file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/scan-long.txt
	msgScanLongRaw string
	MsgScanLong    = strings.TrimSpace(msgScanLongRaw)

	//go:embed msgs/scan-example.txt
	msgScanExampleRaw string
	MsgScanExample    = strings.TrimSpace(msgScanExampleRaw)

	//go:embed msgs/layers-long.txt
	msgLayersLongRaw string
	MsgLayersLong    = strings.TrimSpace(msgLayersLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimSpace(msgGenConfigExampleRaw)

	//go:embed msgs/topics-long.txt
	msgTopicsLongRaw string
	MsgTopicsLong    = strings.TrimSpace(msgTopicsLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
