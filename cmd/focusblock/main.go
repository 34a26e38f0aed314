package main

import "github.com/sandeepkv93/focusblock/internal/cli"

func main() {
	cli.Execute()
}
