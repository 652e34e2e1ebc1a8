package main

import "multiplayerctl/cmd"

func main() {
	cmd.Execute()
}
