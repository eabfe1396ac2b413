package main

import (
	"github.com/mfreeman451/wifiradar/cmd/wifictl/cmd"
)

func main() {
	cmd.Execute()
}
