package main

import (
	"fmt"
	"os"

	"github.com/Atharvaux2222/zat-qr-scanner/cmd/zat-qr-scanner/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
