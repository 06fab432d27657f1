// Command sweepx computes pairwise segment intersections for a single
// input file and writes them alongside it.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dkrylov/sweepline"
	"github.com/dkrylov/sweepline/fileio"
)

// Exit codes, per the external interface contract: 0 on success, 1 when
// the input file itself is at fault, 2 when the core rejects the parsed
// segments as geometrically invalid.
const (
	exitOK              = 0
	exitInputMalformed  = 1
	exitInvariantFailed = 2
)

func main() {
	cmd := &cli.Command{
		Name:      "sweepx",
		Usage:     "Compute pairwise line-segment intersections with the Bentley-Ottmann sweep",
		UsageText: "sweepx [--epsilon value] [--verbose] <input-file>",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:  "epsilon",
				Usage: "swap epsilon nudge applied past a confirmed crossing",
				Value: 1e-9,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log the segment and intersection counts",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		var malformed *sweepline.InputMalformedError
		var invariant *sweepline.InvariantViolatedError
		switch {
		case errors.As(err, &malformed):
			log.Println(err)
			os.Exit(exitInputMalformed)
		case errors.As(err, &invariant):
			log.Println(err)
			os.Exit(exitInvariantFailed)
		default:
			log.Println(err)
			os.Exit(exitInputMalformed)
		}
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one input-file argument")
	}
	inputPath := cmd.Args().First()
	verbose := cmd.Bool("verbose")
	epsilon := cmd.Float("epsilon")

	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	segments, err := fileio.ReadSegments(in)
	if err != nil {
		return err
	}
	if verbose {
		log.Printf("read %d segments from %s", len(segments), inputPath)
	}

	var opts []sweepline.Option
	if epsilon > 0 {
		opts = append(opts, sweepline.WithSwapEpsilon(epsilon))
	}

	points, err := sweepline.ComputeIntersections(segments, opts...)
	if err != nil {
		return err
	}
	if verbose {
		log.Printf("found %d intersection points", len(points))
	}

	outPath := outputPath(inputPath)
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return fileio.WriteResults(out, points)
}

// outputPath derives "<input>.i" in the same directory as input.
func outputPath(input string) string {
	return input + ".i"
}
