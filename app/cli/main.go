package main

import "shopperSpectrum/app/cli/cmd"

func main() {
	cmd.Execute()
}
