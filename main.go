package main

import (
	"srr-reader/cli"
)

func main() {
	cli.Start()
}
