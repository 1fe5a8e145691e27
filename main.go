// main.go
package main

import "sweetshop-api/cmd"

func main() {
	cmd.Execute()
}
