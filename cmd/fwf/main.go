/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/ssargent/fixedwidth/cmd/fwf/cmd"
)

func main() {
	cmd.Execute()
}
