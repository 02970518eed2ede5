package main

import "github.com/jamsub/sunder/cmd"

func main() {
	cmd.Execute()
}
