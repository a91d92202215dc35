// Package paths resolves the well-known directories modconflict uses.
//
// Directories follow the XDG Base Directory layout through adrg/xdg, with
// modconflict-specific environment overrides:
//
//   - MODCONFLICT_CONFIG_DIR: config directory (default: $XDG_CONFIG_HOME/modconflict)
//   - MODCONFLICT_STATE_DIR: state directory, holding the log (default: $XDG_STATE_HOME/modconflict)
//   - MODCONFLICT_DOCUMENTS_DIR: documents directory (default: the XDG documents user dir)
//
// The game's user data directory, where the launcher keeps the load order
// and mod descriptors, lives under the documents directory. Its exact
// location is configuration (see pkg/config).
package paths
