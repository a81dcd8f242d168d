package main

import (
	"os"

	"github.com/betterhyq/promptt/internal/commands"
	"github.com/betterhyq/promptt/output"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.RunCmd())
	rootCmd.AddCommand(commands.SelectCmd())
	rootCmd.AddCommand(commands.ConfirmCmd())

	if err := rootCmd.Execute(); err != nil {
		if !commands.Silent(err) {
			output.New(os.Stderr).Error(err.Error())
		}
		os.Exit(commands.ExitCode(err))
	}
}
