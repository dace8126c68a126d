// cmd/data2a/main.go
package main

import (
	"os"

	"stkfiles/internal/attapp"
)

func main() {
	os.Exit(attapp.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
