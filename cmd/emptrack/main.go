package main

import "employee-tracker/internal/cli"

func main() {
	cli.Execute()
}
