package main

import "nathanbeddoewebdev/cwgraph/cmd"

func main() {
	cmd.Execute()
}
