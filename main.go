package main

import "github.com/techhive/user-api/cmd"

func main() {
	cmd.Execute()
}
