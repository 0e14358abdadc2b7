package app

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// Run executes the CLI command and returns a process exit code.
func Run(args []string) int {
	return run(args, streams{in: os.Stdin, out: os.Stdout, err: os.Stderr})
}

func run(args []string, s streams) int {
	if len(args) == 0 {
		printUsage(s.err)
		return 2
	}

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "help", "--help", "-h":
		printUsage(s.err)
		return 0
	case "translate":
		return runTranslate(s, args[1:])
	case "detect":
		return runDetect(s, args[1:])
	case "providers":
		return runProviders(s, args[1:])
	case "languages":
		return runLanguages(s, args[1:])
	case "credentials":
		return runCredentials(s, args[1:])
	case "serve":
		return runServe(s, args[1:])
	default:
		fmt.Fprintf(s.err, "unknown command: %s\n\n", args[0])
		printUsage(s.err)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "fusiontranslate CLI")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  fusiontranslate <command> [flags]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  translate    Translate text from arguments or stdin")
	fmt.Fprintln(w, "  detect       Guess the language of a text locally")
	fmt.Fprintln(w, "  providers    List providers and whether they are ready")
	fmt.Fprintln(w, "  languages    List the languages a provider supports")
	fmt.Fprintln(w, "  credentials  Manage the stored provider credentials")
	fmt.Fprintln(w, "  serve        Start the HTTP API server")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Use \"fusiontranslate <command> -h\" for command-specific flags.")
}
