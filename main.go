package main

import "github.com/harou24/oa-cli/cmd"

func main() {
	cmd.Execute()
}
