package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/streamparty/ripple"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// Layered-graph throughput benchmark. Every node in a layer combines
// nSources nodes of the layer above, so one source write recomputes the
// whole reachable subgraph in a single update pass.

func main() {
	log.Print("Starting layered ripple benchmark, please wait...")
	defer log.Print("Finished layered ripple benchmark")

	// Fan-in multiplies update work per layer (a node recomputes once
	// per input that changed), so depth and nSources trade off against
	// each other in these configs.
	cfgs := []layerTestConfig{
		{
			name:        "simple component",
			width:       10,
			totalLayers: 5,
			nSources:    2,
			iterations:  10000,
		},
		{
			name:        "wide dense",
			width:       1000,
			totalLayers: 2,
			nSources:    25,
			iterations:  1000,
		},
		{
			name:        "deep",
			width:       5,
			totalLayers: 500,
			nSources:    1,
			iterations:  5000,
		},
		{
			name:        "large web app",
			width:       1000,
			totalLayers: 5,
			nSources:    4,
			iterations:  200,
		},
	}

	type results struct {
		sum      int
		count    int64
		duration time.Duration
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"framework", "size", "nSources", "nTimes", "test", "time", "updateRate",
	})

	testRepeats := 5
	for _, cfg := range cfgs {
		log.Printf("Running '%s' config", cfg.name)
		counter := new(int64)
		graph := makeLayerGraph(&makeLayerGraphConfig{
			counter:     counter,
			width:       cfg.width,
			totalLayers: cfg.totalLayers,
			nSources:    cfg.nSources,
		})

		runOnce := func() int {
			return runLayerGraph(graph, cfg.iterations)
		}
		// run once to warm up
		runOnce()

		bestResult := &results{
			duration: time.Hour,
		}

		for i := 0; i < testRepeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d", cfg.name, i+1, testRepeats)
			*counter = 0
			start := time.Now()
			sum := runOnce()
			duration := time.Since(start)

			if duration < bestResult.duration {
				bestResult.duration = duration
				bestResult.sum = sum
				bestResult.count = *counter
			}
		}

		updateRate := float64(bestResult.count) / (float64(bestResult.duration) / float64(time.Millisecond))

		table.Append([]string{
			"ripple",
			fmt.Sprintf("%dx%d", cfg.width, cfg.totalLayers),
			fmt.Sprint(cfg.nSources),
			humanize.Comma(cfg.iterations),
			cfg.name,
			fmt.Sprint(bestResult.duration),
			humanize.Comma(int64(updateRate)),
		})
	}
	table.Render()
}

type layerTestConfig struct {
	name        string // friendly name for the test, should be unique
	width       int    // width of dependency graph to construct
	totalLayers int    // depth of dependency graph to construct
	nSources    int    // number of sources feeding each node
	iterations  int64  // number of test iterations
}

type layerGraph struct {
	sources []*ripple.Node[int]
	leaves  []*ripple.Node[int]
}

type makeLayerGraphConfig struct {
	counter                      *int64
	width, totalLayers, nSources int
}

func makeLayerGraph(cfg *makeLayerGraphConfig) *layerGraph {
	sources := make([]*ripple.Node[int], cfg.width)
	for i := range sources {
		sources[i] = ripple.From(i)
	}

	prevRow := sources
	for l := 0; l < cfg.totalLayers-1; l++ {
		row := make([]*ripple.Node[int], cfg.width)
		for i := range row {
			mySources := make([]*ripple.Node[int], 0, cfg.nSources)
			for s := 0; s < cfg.nSources; s++ {
				mySources = append(mySources, prevRow[(i+s)%len(prevRow)])
			}
			row[i] = ripple.CombineAll(func(vs []int) int {
				*cfg.counter++
				sum := 0
				for _, v := range vs {
					sum += v
				}
				return sum
			}, mySources...)
		}
		prevRow = row
	}

	return &layerGraph{sources: sources, leaves: prevRow}
}

// Execute the graph by writing one of the sources per iteration and
// return the sum of all leaf values.
func runLayerGraph(graph *layerGraph, iterations int64) int {
	for i := 0; i < int(iterations); i++ {
		sourceDex := i % len(graph.sources)
		graph.sources[sourceDex].Write(i + sourceDex)
	}

	sum := 0
	for _, leaf := range graph.leaves {
		if v, ok := leaf.Read(); ok {
			sum += v
		}
	}
	return sum
}
