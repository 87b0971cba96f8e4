package main

import "smugembed/cmd"

func main() {
	cmd.Execute()
}
