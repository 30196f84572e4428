package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ZJAVED2012/PAKNet-AI/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "paknet: %v\n", err)
		var hinted *cli.HintedError
		if errors.As(err, &hinted) && hinted.Hint != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hinted.Hint)
		}
		os.Exit(1)
	}
}
