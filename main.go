package main

import (
	"github.com/dadap/snapd/cmd"
)

func main() {
	cmd.Execute()
}
