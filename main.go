// file: main.go
// version: 1.0.0
// guid: 3f8a1b2c-4d5e-6f70-8192-a3b4c5d6e7f8

package main

import (
	"fmt"
	"os"

	"booklibrary/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
