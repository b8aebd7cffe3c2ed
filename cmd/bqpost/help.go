package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bqpost [flags] <input>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Post-process rendered HTML: extract the table of contents into")
	fmt.Fprintln(w, "<docname>.toc.html, restyle icons and code blocks, and add a header")
	fmt.Fprintln(w, "and footer.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    HTML file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Destination directory (default: next to input)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto, max 32)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "  -a, --attr <k=v>          Document attribute, KEY! unsets (repeatable)")
	fmt.Fprintln(w, "                            bq-header=<asset>|front-matter, bq-footer=<asset>")
	fmt.Fprintln(w, "      --asset-dir <dir>     Asset search directory (repeatable)")
	fmt.Fprintln(w, "      --toc-mode <s>        Table of contents mode: dom, marker")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --log-level <s>       Log level: debug, info, warn, error")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timing and debug logs")
	fmt.Fprintln(w, "      --print-config        Print the effective configuration")
	fmt.Fprintln(w, "      --diff                Print a unified diff, write nothing")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  BQPOST_CONFIG, BQPOST_OUTPUT_DIR, BQPOST_ASSET_DIR, BQPOST_TOC_MODE,")
	fmt.Fprintln(w, "  BQPOST_LOG_LEVEL, BQPOST_WORKERS")
}
