// Command ensnorm is a CLI front end for the ensnorm pipeline: one name per
// argument (or one per line on stdin), normalized, beautified, or both,
// with an optional raw-token debug mode.
//
// Modeled on the pack's flag-based CLI convention (see
// pascaldekloe-part5/cmd/iecat/main.go): package-level flag vars, a
// dedicated CmdLog prefixed with the program name, no subcommands.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ensnorm/go-ensnorm/ensnorm"
	"github.com/ensnorm/go-ensnorm/internal/obslog"
)

var CmdLog = log.New(os.Stderr, filepath.Base(os.Args[0])+": ", 0)

var (
	modeFlag     = flag.String("mode", "process", "Operation to run: `normalize`, `beautify`, `process`, or `tokens`.")
	jsonFlag     = flag.Bool("json", false, "Emit one JSON object per input line instead of plain text.")
	logLevelFlag = flag.String("log-level", "info", "Minimum log `level`: debug, info, warn, error, disabled.")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevelFlag)
	if err != nil {
		CmdLog.Fatalf("invalid -log-level %q: %v", *logLevelFlag, err)
	}
	obslog.Configure(os.Stderr, level)
	obslog.SetJSON(false, os.Stderr)

	switch *modeFlag {
	case "normalize", "beautify", "process", "tokens":
	default:
		CmdLog.Fatalf("unknown -mode %q", *modeFlag)
	}

	names := flag.Args()
	exitCode := 0
	if len(names) > 0 {
		for _, name := range names {
			if !run(name) {
				exitCode = 1
			}
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if !run(scanner.Text()) {
				exitCode = 1
			}
		}
		if err := scanner.Err(); err != nil {
			CmdLog.Fatal(err)
		}
	}
	os.Exit(exitCode)
}

// run processes one input name in the configured mode, printing its result
// (or error) to stdout, and reports whether it succeeded.
func run(name string) bool {
	switch *modeFlag {
	case "tokens":
		tokens, err := ensnorm.Tokenize(name)
		if err != nil {
			return reportErr(name, err)
		}
		return reportTokens(name, tokens)
	case "normalize":
		out, err := ensnorm.Normalize(name)
		if err != nil {
			return reportErr(name, err)
		}
		return reportText(name, map[string]string{"normalized": out})
	case "beautify":
		out, err := ensnorm.Beautify(name)
		if err != nil {
			return reportErr(name, err)
		}
		return reportText(name, map[string]string{"beautified": out})
	default: // "process"
		result, err := ensnorm.Process(name)
		if err != nil {
			return reportErr(name, err)
		}
		return reportText(name, map[string]string{
			"normalized": result.Normalized,
			"beautified": result.Beautified,
		})
	}
}

func reportErr(name string, err error) bool {
	obslog.Debug().Str("input", name).Err(err).Msg("processing failed")
	if *jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.Encode(map[string]string{"input": name, "error": err.Error()})
	} else {
		fmt.Printf("%s\tERROR\t%v\n", name, err)
	}
	return false
}

func reportText(name string, fields map[string]string) bool {
	if *jsonFlag {
		out := map[string]string{"input": name}
		for k, v := range fields {
			out[k] = v
		}
		enc := json.NewEncoder(os.Stdout)
		enc.Encode(out)
		return true
	}
	for _, key := range []string{"normalized", "beautified"} {
		if v, ok := fields[key]; ok {
			fmt.Printf("%s\t%s\t%s\n", name, key, v)
		}
	}
	return true
}

func reportTokens(name string, tokens []ensnorm.Token) bool {
	if *jsonFlag {
		type tok struct {
			Kind  string `json:"kind"`
			Index int    `json:"index"`
			Text  string `json:"text"`
		}
		out := make([]tok, len(tokens))
		for i, t := range tokens {
			out[i] = tok{Kind: t.Kind.String(), Index: t.Index, Text: string(t.CPs)}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.Encode(map[string]any{"input": name, "tokens": out})
		return true
	}
	for _, t := range tokens {
		fmt.Printf("%s\t%s\t%d\t%q\n", name, t.Kind, t.Index, string(t.CPs))
	}
	return true
}
