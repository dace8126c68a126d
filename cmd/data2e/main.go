// cmd/data2e/main.go
package main

import (
	"os"

	"stkfiles/internal/ephapp"
)

func main() {
	os.Exit(ephapp.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
