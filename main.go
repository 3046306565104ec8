package main

import "github.com/lsnet/topodiff/cmd"

func main() {
	cmd.Execute()
}
