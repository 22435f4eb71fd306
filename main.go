package main

import "github.com/robalobadob/sylver/apps/go-viz/cmd"

func main() {
	cmd.Execute()
}
