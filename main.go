package main

import "github.com/mj1618/axpost/cmd"

func main() {
	cmd.Execute()
}
