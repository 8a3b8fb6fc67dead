package main

import "assessctl/internal/cli"

func main() {
	cli.Execute()
}
