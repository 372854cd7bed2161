package main

import "github.com/mcoot/pickleball-scorekeeper/internal/cli"

func main() {
	cli.Execute()
}
