package main

import "qq/cmd"

func main() {
	cmd.Execute()
}
