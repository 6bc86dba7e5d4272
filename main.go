package main

import (
	"github.com/rskv-p/bintree/cmd"
)

func main() {
	cmd.Execute()
}
