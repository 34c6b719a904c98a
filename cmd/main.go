package main

import (
	"github.com/genomesim/go-transposon/pkg/cmd"
)

func main() {
	cmd.Execute()
}
