package main

import "invertdeck/backend/internal/cli"

func main() {
	cli.Execute()
}
