package main

import "github.com/aalvaropc/benchstats/internal/cli"

func main() {
	cli.Execute()
}
