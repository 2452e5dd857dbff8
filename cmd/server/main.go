package main

import (
	"leadsync/cmd/server/cmd"
)

func main() {
	cmd.Execute()
}
