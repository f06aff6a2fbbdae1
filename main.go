package main

import "github.com/mouse-blink/breach/cmd"

func main() {
	cmd.Execute()
}
