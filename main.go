package main

import "spent/cmd"

func main() {
	cmd.Execute()
}
