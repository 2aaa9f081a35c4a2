package main

import (
	"os"

	"github.com/oghenedorotoby/rushmore-pizzeria/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
