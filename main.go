package main

import "github.com/averost/focustick/cmd"

func main() {
	cmd.Execute()
}
