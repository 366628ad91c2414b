package main

import "curated-packages/internal/cli"

func main() {
	cli.Execute()
}
