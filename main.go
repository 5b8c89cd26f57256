package main

import "thintimer.com/thintimer/cmd"

func main() {
	cmd.Execute()
}
