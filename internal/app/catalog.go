package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"horse.fit/fusiontranslate/internal/cli"
	"horse.fit/fusiontranslate/internal/langdetect"
	"horse.fit/fusiontranslate/internal/translation"
)

func runProviders(s streams, args []string) int {
	fs := flag.NewFlagSet("providers", flag.ContinueOnError)
	fs.SetOutput(s.err)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	env, err := loadEnvironment(s, envLoader)
	if err != nil {
		fmt.Fprintln(s.err, err)
		return 1
	}
	defaultKind, _ := env.kind("")

	for _, kind := range translation.Kinds() {
		status := "ready"
		if _, err := env.translator(kind, translation.Credentials{}); err != nil {
			if !errors.Is(err, translation.ErrMissingCredentials) {
				fmt.Fprintf(s.err, "Failed to configure %s: %v\n", kind, err)
				return 1
			}
			status = "missing credentials"
		}
		marker := ""
		if kind == defaultKind {
			marker = "default"
		}
		fmt.Fprintf(s.out, "%-10s %-20s %s\n", kind, status, marker)
	}
	return 0
}

func runLanguages(s streams, args []string) int {
	fs := flag.NewFlagSet("languages", flag.ContinueOnError)
	fs.SetOutput(s.err)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	provider := fs.String("provider", "", "Translation provider; defaults to TRANSLATION_PROVIDER")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	env, err := loadEnvironment(s, envLoader)
	if err != nil {
		fmt.Fprintln(s.err, err)
		return 1
	}
	kind, err := env.kind(*provider)
	if err != nil {
		fmt.Fprintln(s.err, err)
		return 2
	}

	for _, option := range translation.LanguageOptions(kind) {
		fmt.Fprintf(s.out, "%-8s %-8s %s\n", option.Code, option.Wire, option.Label)
	}
	return 0
}

func runDetect(s streams, args []string) int {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	fs.SetOutput(s.err)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	text := strings.Join(fs.Args(), " ")
	if fs.NArg() == 0 && s.in != nil {
		raw, err := io.ReadAll(s.in)
		if err != nil {
			fmt.Fprintf(s.err, "Failed to read input: %v\n", err)
			return 1
		}
		text = string(raw)
	}
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(s.err, "nothing to detect: pass text as arguments or on stdin")
		return 2
	}

	code, ok := langdetect.Detect(text)
	if !ok {
		fmt.Fprintln(s.err, "Could not detect the language")
		return 1
	}
	fmt.Fprintf(s.out, "%s\t%s\n", code, code.Name())
	return 0
}
