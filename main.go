package main

import "github.com/constructioncheck/ccgen/cmd"

func main() {
	cmd.Execute()
}
