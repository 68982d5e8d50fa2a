package main

import "github.com/ivlev/routemotion/internal/cli"

func main() {
	cli.Execute()
}
