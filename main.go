package main

import "github.com/ThomasGysemans/csv-tools/cmd"

func main() {
	cmd.Execute()
}
