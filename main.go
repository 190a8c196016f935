package main

import "perfgen/cmd"

func main() {
	cmd.Execute()
}
