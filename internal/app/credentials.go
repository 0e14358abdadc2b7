package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"strings"

	"horse.fit/fusiontranslate/internal/cli"
	"horse.fit/fusiontranslate/internal/config"
	"horse.fit/fusiontranslate/internal/translation"
)

func runCredentials(s streams, args []string) int {
	if len(args) == 0 {
		printCredentialsUsage(s)
		return 2
	}

	action := strings.ToLower(strings.TrimSpace(args[0]))
	switch action {
	case "set", "remove":
		if len(args) < 2 || strings.HasPrefix(args[1], "-") {
			fmt.Fprintf(s.err, "credentials %s requires a provider\n", action)
			printCredentialsUsage(s)
			return 2
		}
	case "list", "path":
	default:
		fmt.Fprintf(s.err, "Unknown credentials action: %s\n\n", args[0])
		printCredentialsUsage(s)
		return 2
	}

	var providerName string
	rest := args[1:]
	if action == "set" || action == "remove" {
		providerName = args[1]
		rest = args[2:]
	}

	fs := flag.NewFlagSet("credentials "+action, flag.ContinueOnError)
	fs.SetOutput(s.err)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	var id, secret *string
	var secretStdin *bool
	if action == "set" {
		id = fs.String("id", "", "Credential id: baidu app id, youdao app key or caiyun request id")
		secret = fs.String("secret", "", "Credential secret: baidu key, youdao app secret or caiyun token")
		secretStdin = fs.Bool("secret-stdin", false, "Read the secret from the first stdin line")
	}

	if err := fs.Parse(rest); err != nil {
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

	switch action {
	case "path":
		fmt.Fprintln(s.out, env.credentialsPath)
		return 0
	case "list":
		for _, name := range env.store.Providers() {
			entry := env.store[name]
			fmt.Fprintf(s.out, "%-10s id=%s secret=%s\n", name, setOrUnset(entry.ID), setOrUnset(entry.Secret))
		}
		return 0
	}

	kind, err := translation.ParseKind(providerName)
	if err != nil {
		fmt.Fprintln(s.err, err)
		return 2
	}

	if action == "remove" {
		if !env.store.Remove(kind) {
			fmt.Fprintf(s.err, "No stored credentials for %s\n", kind)
			return 1
		}
		if err := config.SaveCredentials(env.credentialsPath, env.store); err != nil {
			fmt.Fprintf(s.err, "Failed to save credentials: %v\n", err)
			return 1
		}
		fmt.Fprintf(s.out, "Removed %s credentials from %s\n", kind, env.credentialsPath)
		return 0
	}

	if !kind.RequiresCredentials() {
		fmt.Fprintf(s.err, "%s does not use credentials\n", kind)
		return 2
	}

	newSecret := strings.TrimSpace(*secret)
	if *secretStdin {
		if s.in == nil {
			fmt.Fprintln(s.err, "--secret-stdin requires stdin")
			return 2
		}
		scanner := bufio.NewScanner(s.in)
		if scanner.Scan() {
			newSecret = strings.TrimSpace(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(s.err, "Failed to read secret: %v\n", err)
			return 1
		}
	}
	newID := strings.TrimSpace(*id)
	if newID == "" && newSecret == "" {
		fmt.Fprintln(s.err, "credentials set requires --id, --secret or --secret-stdin")
		return 2
	}

	entry := env.store.Get(kind)
	if newID != "" {
		entry.ID = newID
	}
	if newSecret != "" {
		entry.Secret = newSecret
	}
	env.store.Set(kind, entry)

	if err := config.SaveCredentials(env.credentialsPath, env.store); err != nil {
		fmt.Fprintf(s.err, "Failed to save credentials: %v\n", err)
		return 1
	}
	fmt.Fprintf(s.out, "Saved %s credentials to %s\n", kind, env.credentialsPath)

	if _, err := translation.New(kind, entry.Credentials()); err != nil {
		fmt.Fprintf(s.err, "Warning: %v\n", err)
	}
	return 0
}

func setOrUnset(value string) string {
	if strings.TrimSpace(value) == "" {
		return "unset"
	}
	return "set"
}

func printCredentialsUsage(s streams) {
	fmt.Fprintln(s.err, "Usage:")
	fmt.Fprintln(s.err, "  fusiontranslate credentials set <provider> [--id <id>] [--secret <secret> | --secret-stdin] [--env .env]")
	fmt.Fprintln(s.err, "  fusiontranslate credentials remove <provider> [--env .env]")
	fmt.Fprintln(s.err, "  fusiontranslate credentials list [--env .env]")
	fmt.Fprintln(s.err, "  fusiontranslate credentials path [--env .env]")
}
