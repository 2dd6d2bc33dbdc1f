// plangen converts test execution results into a styled xlsx test plan.
//
// Usage:
//
//	plangen
//	plangen -input reports/test-results.json -output reports/test-plan-output.xlsx
//	plangen -title "Release 12 Validation Scenarios"
//
// The input is the runner's JSON report ({"tests":{"passed":[...],
// "failed":[...]}}). The output is a single-sheet workbook with a
// title/prerequisite banner, one row per test, and pass/fail row fills.
//
// Defaults can also be set in a .plangen.yaml file; flags win over the
// file, the file wins over built-in defaults.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/storefront-qa/plangen/internal/config"
	"github.com/storefront-qa/plangen/internal/console"
	"github.com/storefront-qa/plangen/pkg/plan"
	"github.com/storefront-qa/plangen/pkg/results"
	"github.com/storefront-qa/plangen/pkg/workbook"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("plangen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFlag := fs.String("config", "", "Path to a .plangen.yaml config file")
	inputFlag := fs.String("input", "", "Path to the test results JSON report")
	outputFlag := fs.String("output", "", "Path for the generated xlsx test plan")
	titleFlag := fs.String("title", "", "Title text for the workbook banner row")
	noColorFlag := fs.Bool("no-color", false, "Disable colored summary output")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "plangen: unexpected argument %q\n", fs.Arg(0))
		return 2
	}

	flags := config.Flags{
		Input:   *inputFlag,
		Output:  *outputFlag,
		Title:   *titleFlag,
		NoColor: *noColorFlag,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			flags.InputSet = true
		case "output":
			flags.OutputSet = true
		case "title":
			flags.TitleSet = true
		case "no-color":
			flags.NoColorSet = true
		}
	})
	cfg := config.Merge(config.Load(*configFlag, stderr), flags)

	doc, err := results.Load(cfg.Input)
	if err != nil {
		fmt.Fprintf(stderr, "plangen: %v\n", err)
		return 1
	}

	rows := plan.BuildRows(doc)
	if err := workbook.Write(cfg.Output, rows); err != nil {
		fmt.Fprintf(stderr, "plangen: %v\n", err)
		return 1
	}
	if err := workbook.Format(cfg.Output, cfg.Title); err != nil {
		fmt.Fprintf(stderr, "plangen: %v\n", err)
		return 1
	}

	console.Summary(stdout, resolveTheme(cfg.NoColor, stdout), results.ComputeStats(doc), cfg.Output)
	return 0
}

// resolveTheme picks the colored theme only for TTY output with color
// allowed. Honors NO_COLOR.
func resolveTheme(noColor bool, stdout io.Writer) console.Theme {
	if noColor || os.Getenv("NO_COLOR") != "" || !isTTYWriter(stdout) {
		return console.MonoTheme()
	}
	return console.DefaultTheme()
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
