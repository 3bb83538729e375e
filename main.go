package main

import "github.com/vincent-oy/GrocerEase/cmd/grocerease"

func main() {
	grocerease.Execute()
}
