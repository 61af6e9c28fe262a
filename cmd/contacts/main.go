package main

import (
	"os"

	"addressbook/cmd/contacts/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
