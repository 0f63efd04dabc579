package main

import "github.com/mcoot/drophunt/internal/cli"

func main() {
	cli.Execute()
}
