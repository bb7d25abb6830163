package main

import "github.com/askdrjosh/postpilot/cmd"

func main() {
	cmd.Execute()
}
