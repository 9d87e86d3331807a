package main

import "github.com/alexiusacademia/goshell/cmd"

func main() {
	cmd.Execute()
}
