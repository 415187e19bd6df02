package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		// SilenceErrors is set on the root command, so surface the
		// failure here.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
