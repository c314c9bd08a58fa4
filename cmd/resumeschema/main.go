package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/jsonresume"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "schema":
		schemaCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "resumeschema\n\nUsage:\n  resumeschema schema [-o out.json] [-indent \"  \"]\n\nNotes:\n  - The schema reflects the build tags of this binary (sideprojects, novalidate).")
}

// schemaCmd writes the résumé JSON Schema to -o or stdout.
func schemaCmd(args []string) {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	var out string
	var indent string
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	fs.StringVar(&indent, "indent", "  ", "indentation; empty for compact output")
	_ = fs.Parse(args)

	var (
		data []byte
		err  error
	)
	if indent == "" {
		data, err = gojson.Marshal(jsonresume.JSONSchema())
	} else {
		data, err = gojson.MarshalIndent(jsonresume.JSONSchema(), "", indent)
	}
	if err != nil {
		fatalf("encode schema: %v", err)
	}
	data = append(data, '\n')

	if out == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			fatalf("writing output: %v", err)
		}
		return
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		fatalf("creating output dir: %v", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "resumeschema: "+format+"\n", a...)
	os.Exit(1)
}
