package main

import "github.com/dirkmc/go-ipns/cmd/ipns/cmd"

func main() {
	cmd.Execute()
}
