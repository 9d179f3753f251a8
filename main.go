package main

import (
	"os"

	"github.com/tonhe/poewatch/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
