package main

import "github.com/lapwise/lapwise-go/cmd"

func main() {
	cmd.Execute()
}
