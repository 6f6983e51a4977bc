package main

import (
	"fmt"
	"os"

	"github.com/hidetatz/kai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "kai: %v\n", err)
		os.Exit(1)
	}
}
