// Command vpackgen renders a schema package's generated file. It is meant
// to run from a //go:generate directive, not interactively - unlike
// vpackctl, it takes no subcommands, just flags.
//
// vpackgen does not parse annotated Go source; it reads a genschema.Schema
// value named by -schema from a small Go plugin-free registry built into
// this binary (see schemas.go), the same limitation spec.md places on this
// module's generator: no [[noserde]]-style attribute parser, only a typed
// schema description as the generator's input.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nsrdbin/vpack/internal/genschema"
)

func main() {
	pkg := flag.String("package", "", "package name the generated file declares")
	schemaName := flag.String("schema", "", "registered schema name (see schemas.go)")
	out := flag.String("out", "", "output file path ('-' for stdout)")
	flag.Parse()

	if *pkg == "" || *schemaName == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "usage: vpackgen -package NAME -schema NAME -out PATH")
		os.Exit(2)
	}

	schema, ok := registeredSchemas[*schemaName]
	if !ok {
		fmt.Fprintf(os.Stderr, "vpackgen: unknown schema %q\n", *schemaName)
		os.Exit(1)
	}

	src := genschema.Render(*pkg, genschema.Build(schema))

	if *out == "-" {
		fmt.Print(src)
		return
	}
	if err := os.WriteFile(*out, []byte(src), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "vpackgen: %v\n", err)
		os.Exit(1)
	}
}
