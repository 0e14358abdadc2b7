package app

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"horse.fit/fusiontranslate/internal/cli"
	"horse.fit/fusiontranslate/internal/langdetect"
	"horse.fit/fusiontranslate/internal/language"
	"horse.fit/fusiontranslate/internal/translation"
)

const maxInputLineBytes = 1 << 20

type translateOutput struct {
	Provider       string   `json:"provider"`
	Lang           string   `json:"lang"`
	DetectedSource string   `json:"detected_source,omitempty"`
	Text           *string  `json:"text,omitempty"`
	Texts          []string `json:"texts,omitempty"`
	LatencyMs      int64    `json:"latency_ms"`
}

func runTranslate(s streams, args []string) int {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	fs.SetOutput(s.err)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", time.Minute, "Command timeout")
	provider := fs.String("provider", "", "Translation provider (baidu, youdao, alibaba, caiyun, mymemory); defaults to TRANSLATION_PROVIDER")
	from := fs.String("from", "auto", "Source language, or auto to let the provider detect it")
	to := fs.String("to", "", "Target language (required)")
	batch := fs.Bool("batch", false, "Translate every non-blank stdin line as one batch")
	detect := fs.Bool("detect", false, "Detect the source language locally when --from is auto")
	asJSON := fs.Bool("json", false, "Print the result as JSON")
	id := fs.String("id", "", "Credential id: baidu app id, youdao app key or caiyun request id")
	secret := fs.String("secret", "", "Credential secret: baidu key, youdao app secret or caiyun token")
	endpoint := fs.String("endpoint", "", "Override the provider endpoint URL")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	target, ok := language.Parse(*to)
	if !ok {
		fmt.Fprintln(s.err, "--to is required and must be a known language code")
		return 2
	}
	source := language.Undetermined
	if raw := strings.TrimSpace(*from); raw != "" && !strings.EqualFold(raw, "auto") {
		source, ok = language.Parse(raw)
		if !ok {
			fmt.Fprintf(s.err, "--from: unknown language %q\n", raw)
			return 2
		}
	}

	texts, err := readInput(s.in, fs.Args(), *batch)
	if err != nil {
		fmt.Fprintf(s.err, "Failed to read input: %v\n", err)
		return 1
	}
	if len(texts) == 0 {
		fmt.Fprintln(s.err, "nothing to translate: pass text as arguments or on stdin")
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
	translator, err := env.translator(kind,
		translation.Credentials{ID: *id, Secret: *secret},
		translation.WithEndpoint(strings.TrimSpace(*endpoint)),
	)
	if err != nil {
		fmt.Fprintf(s.err, "Failed to configure %s: %v\n", kind, err)
		return 1
	}

	if source == language.Undetermined && *detect {
		if detected, ok := langdetect.Detect(strings.Join(texts, "\n")); ok {
			source = detected
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	out := translateOutput{Provider: kind.String()}
	if *batch {
		resp, err := translator.TranslateBatch(ctx, translation.BatchRequest{Texts: texts, Source: source, Target: target})
		if err != nil {
			fmt.Fprintf(s.err, "Translate failed: %v\n", err)
			return 1
		}
		out.Texts = resp.Texts
		out.Lang = resp.Lang.String()
		out.DetectedSource = reportedSource(resp.DetectedSource, source)
		out.LatencyMs = resp.LatencyMs
	} else {
		resp, err := translator.Translate(ctx, translation.Request{Text: texts[0], Source: source, Target: target})
		if err != nil {
			fmt.Fprintf(s.err, "Translate failed: %v\n", err)
			return 1
		}
		out.Text = &resp.Text
		out.Lang = resp.Lang.String()
		out.DetectedSource = reportedSource(resp.DetectedSource, source)
		out.LatencyMs = resp.LatencyMs
	}

	if *asJSON {
		encoder := json.NewEncoder(s.out)
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(out); err != nil {
			fmt.Fprintf(s.err, "Failed to write output: %v\n", err)
			return 1
		}
		return 0
	}

	if out.Text != nil {
		fmt.Fprintln(s.out, *out.Text)
		return 0
	}
	for _, text := range out.Texts {
		fmt.Fprintln(s.out, text)
	}
	return 0
}

// readInput returns one text for single mode and one text per non-blank
// line for batch mode. Arguments win over stdin: in batch mode each argument
// is one segment.
func readInput(in io.Reader, args []string, batch bool) ([]string, error) {
	if batch && len(args) > 0 {
		texts := make([]string, 0, len(args))
		for _, arg := range args {
			if strings.TrimSpace(arg) != "" {
				texts = append(texts, arg)
			}
		}
		return texts, nil
	}
	if len(args) > 0 {
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return nil, nil
		}
		return []string{text}, nil
	}
	if in == nil {
		return nil, nil
	}

	if !batch {
		raw, err := io.ReadAll(in)
		if err != nil {
			return nil, err
		}
		text := strings.TrimRight(string(raw), "\r\n")
		if strings.TrimSpace(text) == "" {
			return nil, nil
		}
		return []string{text}, nil
	}

	var texts []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxInputLineBytes)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		texts = append(texts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return texts, nil
}

func reportedSource(reported, used language.Code) string {
	if reported != language.Undetermined {
		return reported.String()
	}
	if used != language.Undetermined {
		return used.String()
	}
	return ""
}
