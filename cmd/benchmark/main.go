package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/streamparty/ripple"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const itersKey = "iters"

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure write propagation latency over map-chain grids",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Writes per grid configuration",
				Value: 100,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

var (
	ww = []int{1, 10, 100, 1_000}
	hh = []int{1, 10, 100, 1_000}
)

func addOne(v int) int {
	return v + 1
}

func run(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Uint(itersKey))

	tbl := table.NewWriter()
	tbl.SetTitle("Ripple Streams")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max", "checksum"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			// w parallel map chains of depth h off one source, with a
			// leaf listener hashing every emission. The checksum must
			// be identical across runs: a duplicate or out-of-order
			// notification changes it.
			src := ripple.New[int]()
			digest := xxhash.New()
			var scratch [8]byte
			for i := 0; i < w; i++ {
				last := src
				for j := 0; j < h; j++ {
					last = ripple.Map(last, addOne)
				}
				last.Subscribe(func(v int) {
					binary.LittleEndian.PutUint64(scratch[:], uint64(v))
					digest.Write(scratch[:])
				})
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Write(i + 1)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
					fmt.Sprintf("%016x", digest.Sum64()),
				},
			})
		}
	}

	tbl.Render()
	return nil
}
