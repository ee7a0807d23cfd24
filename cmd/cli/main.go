package main

import "mylib/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
