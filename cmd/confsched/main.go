package main

import "github.com/confsched-dev/confsched/internal/cli"

func main() {
	cli.Execute()
}
