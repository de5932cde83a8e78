package main

import "skm/cmd"

func main() {
	cmd.Execute()
}
