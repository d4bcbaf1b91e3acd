package main

import (
	"fmt"
	"os"

	"github.com/m04kA/SMC-AvailabilityService/internal/cli"
)

func main() {
	if err := cli.NewRoot().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
