package main

import "github.com/Rorical/RoriGen/cmd"

func main() {
	cmd.Execute()
}
