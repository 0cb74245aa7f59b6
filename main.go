package main

import "github.com/Mohsinsiddi/tiascan/cmd"

func main() {
	cmd.Execute()
}
