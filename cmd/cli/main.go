// Command robot-planning builds and samples trapezoidal motion profiles.
//
//	robot-planning profile --s1 10 --v-max 2 --a-max 1 --count 50
//	robot-planning plan plan.yaml --format csv
package main

import (
	"fmt"
	"os"

	"github.com/Marius-Juston/Robot-Planning/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
