package main

import (
	"os"

	"github.com/sdwanlab/vmanage-unlock-cli/pkg/cmd"
)

func main() {
	command := cmd.NewDefaultVManageUnlockCommand()

	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
