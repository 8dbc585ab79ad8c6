package main

import "github.com/jspreadsheet/tabularjs-sub001/cmd/dbf2sheet/cmd"

func main() {
	cmd.Execute()
}
