package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/qirsim/api"
	"github.com/sarchlab/qirsim/report"
)

//go:embed bell.ll
var program string

func main() {
	driver := api.NewDriverBuilder().
		WithQubits(2).
		Build("Driver")

	if err := driver.LoadLines(strings.Split(program, "\n")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	res, err := driver.Run(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	if err := report.WriteText(os.Stdout, res.Distribution); err != nil {
		atexit.Exit(1)
	}

	shots, err := driver.RunShots(context.Background(), 1000)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	if err := report.WriteHistogram(os.Stdout, shots.Histogram); err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
