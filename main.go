package main

import "nathanbeddoewebdev/hirectl/cmd"

func main() {
	cmd.Execute()
}
