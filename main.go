package main

import (
	"github.com/oabooks/exportcore/cmd"
)

func main() {
	cmd.Execute()
}
