// rstat evaluates R-style distribution functions, describes samples
// read from stdin and draws distribution plots.
//
// Defaults for distribution parameters and chart decorations can be
// kept in a YAML file named by --config or RSTAT_CONFIG. A .env file
// in the working directory is loaded first.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
