package main

import "github.com/mj1618/get-window-id/cmd"

func main() {
	cmd.Execute()
}
