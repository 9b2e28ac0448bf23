package main

import "github.com/nsrdbin/vpack/cmd/vpackctl/cmd"

func main() {
	cmd.Execute()
}
