// Package main provides the styler CLI for converting between utility
// classes and structured design properties, importing externally
// authored markup, and rendering static canvas previews.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
