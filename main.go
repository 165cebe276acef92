package main

import "github.com/talentpipe/talentpipe/cmd"

func main() {
	cmd.Execute()
}
