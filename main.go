package main

import (
	"os"

	"github.com/clubcompass/clubcompass/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
