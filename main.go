package main

import (
	"fmt"
	"os"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
