package main

import "github.com/mood-village/server/cmd/server/cmd"

func main() {
	cmd.Execute()
}
