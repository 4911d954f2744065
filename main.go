package main

import "suppression/cmd"

func main() {
	cmd.Execute()
}
