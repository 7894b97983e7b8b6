package main

import (
	"github.com/harrybrwn/hemtal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.Stop(err)
	}
}
