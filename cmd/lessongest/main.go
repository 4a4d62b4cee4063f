package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "lessongest",
		Short: "Convert the Easy Croatian textbook dump into structured JSON",
		Long: `lessongest segments the plain-text dump of the Easy Croatian textbook
into lessons, appendices, word lists and the core dictionary, classifies
each line of content, and emits the result as JSON.`,
		SilenceUsage: true,
	}

	root.AddCommand(newParseCmd())
	root.AddCommand(newServeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
