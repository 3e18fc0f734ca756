package main

import "rebar-check/cmd"

func main() {
	cmd.Execute()
}
