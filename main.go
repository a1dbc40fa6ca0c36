package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus-life/utils"
)

func main() {
	config, err := utils.ParseArgs(os.Args[0], os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err = run(config); err != nil {
		log.Fatalf("%+v", err)
	}
}
