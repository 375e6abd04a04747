package main

import "github.com/theakshaypant/hackhub/cmd/hackhub/cmd"

func main() {
	cmd.Execute()
}
