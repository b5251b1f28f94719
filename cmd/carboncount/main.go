package main

import (
	"fmt"
	"os"

	"github.com/rshade/carboncount/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "carboncount: %v\n", err)
		os.Exit(1)
	}
}
