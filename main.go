package main

import "arcctl/internal/cli"

func main() {
	cli.Execute()
}
