package main

import "rehearse/cmd/rehearse-cli/cmd"

func main() {
	cmd.Execute()
}
