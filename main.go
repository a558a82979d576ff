// Package main provides the entry point for the cheatsheet CLI application.
// cheatsheet opens the cheatsheet stored next to its binary whose name best matches the argument.
package main

import cmd "github.com/toozej/cheatsheet/cmd/cheatsheet"

func main() {
	cmd.Execute()
}
