package main

import "github.com/HaiFongPan/kvpage/cmd"

func main() {
	cmd.Execute()
}
