package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/npaths/cmd/npaths"
	"github.com/arthur-debert/npaths/pkg/ui/styles"
)

func main() {
	rootCmd := npaths.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
