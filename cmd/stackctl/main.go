package main

import "github.com/ganeshdatta23/skillstacker/cmd/stackctl/cmd"

func main() {
	cmd.Execute()
}
