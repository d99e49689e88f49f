package main

import "bookstore/internal/commands"

func main() {
	commands.Execute()
}
