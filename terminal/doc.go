// Package terminal provides the surfaces the game renders into and reads keys from.
//
// Two implementations are available:
//   - ANSI: direct escape sequences over a raw stdin/stdout pair (x/term, x/sys/unix)
//   - Tcell: a tcell.Screen wrapper
//
// Both enter raw mode and the alternate screen on Init, and restore the
// terminal exactly once on Fini. EmergencyReset is the panic-path fallback.
package terminal
