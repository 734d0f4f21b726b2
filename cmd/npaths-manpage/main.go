package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/npaths/cmd/npaths"
	"github.com/arthur-debert/npaths/internal/version"
)

func main() {
	rootCmd := npaths.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "NPATHS",
		Section: "1",
		Source:  "npaths " + version.Version,
		Manual:  "npaths manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
