package main

import "github.com/heathj/eventoptions/cmd"

func main() {
	cmd.Execute()
}
