// Package main provides the gamerental CLI: an interactive, menu-driven
// terminal front-end over the game rental database.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitSysError)
	}
}
