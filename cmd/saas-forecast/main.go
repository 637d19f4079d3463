package main

import (
	"os"

	"github.com/askayyi/saas-forecast/cmd/saas-forecast/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
