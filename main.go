/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/jfmyers9/audiblex/cmd"

func main() {
	cmd.Execute()
}
