// Package main provides the biohub CLI application.
// biohub manages Darwin Core dataset ingestion for the BioHub
// platform database.
package main

import (
	"github.com/PinkDiamond1/biohubbc-platform/cmd"
)

func main() {
	cmd.Execute()
}
