package main

import "github.com/sandeepkv93/habitflower/cmd/habitflower/root"

func main() {
	root.Execute()
}
