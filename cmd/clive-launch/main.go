package main

import (
	"fmt"
	"os"
)

func main() {
	code := 0
	cmd := NewRootCmd(&code)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}
