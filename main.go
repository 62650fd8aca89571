package main

import "github.com/cmdf-dev/cmdf/cmd"

func main() {
	cmd.Execute()
}
