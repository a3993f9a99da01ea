// Package cmd implements the etp CLI application.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&pullCmd{},
	&enrichCmd{},
	&weeklysCmd{},
	&summaryCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application it has a very short lived lifecycle, so it is ok to use global variables.

var outputDir = flag.String("output-dir", "data", "Directory where data files are read and written")

// ensureOutputDir creates the output directory if needed and returns its path.
func ensureOutputDir() (string, error) {
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return "", fmt.Errorf("cannot create output directory %q: %w", *outputDir, err)
	}
	return *outputDir, nil
}

// dataFile returns the path of a file under the output directory.
func dataFile(name string) string { return filepath.Join(*outputDir, name) }

// printMarkdown renders a markdown document to the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
