// cmd/data2sp/main.go
package main

import (
	"os"

	"stkfiles/internal/spapp"
)

func main() {
	os.Exit(spapp.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
