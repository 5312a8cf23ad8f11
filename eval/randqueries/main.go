package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lintang-b-s/Flightx/pkg"
	"github.com/lintang-b-s/Flightx/pkg/concurrent"
	da "github.com/lintang-b-s/Flightx/pkg/datastructure"
	"github.com/lintang-b-s/Flightx/pkg/engine"
	"github.com/lintang-b-s/Flightx/pkg/engine/routing"
	log "github.com/lintang-b-s/Flightx/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	graphFile  = flag.String("graph", "./data/flights.graph", "graph file written by the preprocessor")
	outFile    = flag.String("out", "rand_queries_result.csv", "per query timings")
	numQueries = flag.Int("n", 1000, "number of random sources")
	numWorkers = flag.Int("workers", 8, "number of concurrent queries")
	seed       = flag.Uint64("seed", 42, "random source seed")
)

// runs the same random sources with the naive and the heap router, compares their distance tables
// and writes one "source naive_us heap_us" line per query.
func main() {
	flag.Parse()
	logger, err := log.New()
	if err != nil {
		panic(err)
	}

	re, err := engine.NewEngine(*graphFile, pkg.GEODESIC, pkg.NAIVE_SELECTION, logger)
	if err != nil {
		panic(err)
	}

	g := re.GetRoutingEngine().GetGraph()
	metric := re.GetRoutingEngine().GetMetrics()
	n := g.NumberOfVertices()

	rd := rand.New(rand.NewSource(*seed))
	queries := make([]da.Index, *numQueries)
	for i := range queries {
		queries[i] = da.Index(rd.Intn(n))
	}

	randfout, err := os.Create(*outFile)
	if err != nil {
		panic(err)
	}
	defer randfout.Close()
	w := bufio.NewWriter(randfout)
	defer w.Flush()

	type queryResult struct {
		source      da.Index
		naive, heap time.Duration
		mismatches  int
	}

	lock := sync.Mutex{}

	calcsSP := func(s da.Index) queryResult {
		before := time.Now()
		naiveTree, err := routing.NewDijkstra(g, metric).ShortestPaths(s)
		if err != nil {
			panic(err)
		}
		naive := time.Since(before)

		before = time.Now()
		heapTree, err := routing.NewHeapDijkstra(g, metric).ShortestPaths(s)
		if err != nil {
			panic(err)
		}
		heap := time.Since(before)

		mismatches := 0
		for v := 0; v < n; v++ {
			a, b := naiveTree.GetDistance(da.Index(v)), heapTree.GetDistance(da.Index(v))
			if !da.Eq(a, b) {
				mismatches++
			}
		}

		lock.Lock()
		if _, err := fmt.Fprintf(w, "%d %d %d\n", s, naive.Microseconds(), heap.Microseconds()); err != nil {
			panic(err)
		}
		lock.Unlock()

		return queryResult{source: s, naive: naive, heap: heap, mismatches: mismatches}
	}

	workers := concurrent.NewWorkerPool[da.Index, queryResult](*numWorkers, len(queries))

	for _, q := range queries {
		workers.AddJob(q)
	}

	workers.Close()
	workers.Start(calcsSP)
	workers.Wait()

	var (
		totalNaive, totalHeap time.Duration
		mismatches            int
	)
	for res := range workers.CollectResults() {
		totalNaive += res.naive
		totalHeap += res.heap
		if res.mismatches > 0 {
			logger.Error("routers disagree", zap.Uint32("source", uint32(res.source)), zap.Int("vertices", res.mismatches))
		}
		mismatches += res.mismatches
	}

	if len(queries) > 0 {
		logger.Info("random queries done",
			zap.Int("queries", len(queries)),
			zap.Duration("mean_naive", totalNaive/time.Duration(len(queries))),
			zap.Duration("mean_heap", totalHeap/time.Duration(len(queries))),
			zap.Int("mismatched_distances", mismatches))
	}
}
