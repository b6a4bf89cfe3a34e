// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI replaces the numbered terminal menu of earlier versions with a
// three-view workflow:
//  1. [MenuView] : pick an operation (user, title or watchlist management)
//  2. [FormView] : fill the operation's inputs with textinput fields
//  3. [ResultView] : browse the outcome, as a list for reads or a status line for writes
//
// The [Model] implements bubbletea's standard Init/Update/View pattern. All
// operations go through the same service layer as the CLI and web UI; the
// current login, when present, is threaded in as an explicit [session.Session]
// value so blank user fields can default to the logged-in user.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, tab, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
