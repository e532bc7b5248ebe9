package main

import "github.com/bz888/govhelper/cmd"

func main() {
	cmd.Execute()
}
