// Package menu implements the interactive terminal front-end: a
// hierarchical, single-threaded read-eval loop of numbered menus over
// the rental repositories. Every leaf flow returns control to its parent
// menu on completion, cancellation, or error; only the top-level exit
// choice (or end of input) leaves the loop.
package menu
