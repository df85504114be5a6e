package main

import "github.com/PolarWolf314/cryptokey/cmd"

func main() {
	cmd.Execute()
}
