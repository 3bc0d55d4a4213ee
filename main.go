package main

import "github.com/Endor-Solutions-Architecture/search-dependencies/cmd"

func main() {
	cmd.Execute()
}
