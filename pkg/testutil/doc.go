// Package testutil provides helpers for testing modconflict components.
//
// Tests build their game installs on an in-memory afero filesystem:
//   - NewTestFS and WriteFiles create file trees from path -> content maps
//   - GameSetup declares a game, a user data directory, local and
//     workshop mods, and writes the matching load order
//   - MockPather points the well-known directories at a temp root
//
// Code that opens files itself gets the same GameSetup on the real
// filesystem through NewGameSetupIn and t.TempDir().
package testutil
