package main

import (
	"os"

	"github.com/msto63/why/cmd/why/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
