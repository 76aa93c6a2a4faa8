package main

import "github.com/proteinmuffins/muffins/cmd/muffins/cmd"

func main() {
	cmd.Execute()
}
