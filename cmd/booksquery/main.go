package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	loadEnvFiles()

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
