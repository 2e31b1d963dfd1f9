package main

import (
	"fmt"
	"os"

	"github.com/IRUMVAEmmanuel1/multi-database-e-commerce-analytics-system/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
