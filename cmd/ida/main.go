package main

import (
	"fmt"
	"os"

	"github.com/idadots/ida/cmd/ida/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ida: "+err.Error())
		os.Exit(1)
	}
}
