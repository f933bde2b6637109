package main

import "github.com/notargets/mobius/cmd"

func main() {
	cmd.Execute()
}
