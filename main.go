package main

import "github.com/jsphweid/changes/cmd"

func main() {
	cmd.Execute()
}
