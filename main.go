package main

import "github.com/KaramelBytes/platewise/cmd"

func main() {
	cmd.Execute()
}
