package main

import "charge-finder/cmd"

func main() {
	cmd.Execute()
}
