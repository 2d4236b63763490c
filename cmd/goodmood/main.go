// goodmood is a terminal app that serves random good-mood quotes
package main

import (
	"os"

	"github.com/upFrontEnd/good-mood-generator/cmd/goodmood/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
