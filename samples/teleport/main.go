package main

import (
	"context"
	_ "embed"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/qirsim/api"
	"github.com/sarchlab/qirsim/report"
)

//go:embed teleport.ll
var program string

// theta is the angle encoded as 0x3FF0C152382D7365 in teleport.ll.
const theta = math.Pi / 3

func main() {
	driver := api.NewDriverBuilder().
		WithQubits(3).
		WithTickEngine(true).
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

	if err := report.WriteTable(os.Stdout, res.Distribution); err != nil {
		atexit.Exit(1)
	}

	want := math.Pow(math.Sin(theta/2), 2)
	got := res.Distribution["100"]
	fmt.Printf("P(q2 = 1): got %.4f, want %.4f\n", got, want)

	if math.Abs(got-want) > 1e-9 {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
