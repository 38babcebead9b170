package main

import "github.com/Lazyartist1/Non-Flow-processes-calculator/cmd"

func main() {
	cmd.Execute()
}
