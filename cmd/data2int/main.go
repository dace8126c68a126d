// cmd/data2int/main.go
package main

import (
	"os"

	"stkfiles/internal/intapp"
)

func main() {
	os.Exit(intapp.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
