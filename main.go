package main

import (
	"fmt"
	"os"

	"financeguard/cmd"
)

func main() {
	var err error
	if len(os.Args) > 1 && os.Args[1] == "client" {
		err = cmd.Client(os.Args[2:])
	} else {
		err = cmd.Start()
	}

	if err != nil {
		fmt.Printf("financeguard run into an error: %s\n", err)
		os.Exit(1)
	}
}
