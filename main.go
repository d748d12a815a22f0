package main

import "focusdeck/cmd"

func main() {
	cmd.Execute()
}
