package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"phantom"
)

// Profiling harness: hammers the wrapper hot paths (map keys, affine
// arithmetic) and writes a heap profile so any hidden allocation in
// the wrappers shows up immediately.

type session struct{}
type tick struct{}

type sessionID = phantom.ID[session, uint64]
type cpuTime = phantom.Instant[tick, uint64]
type cpuSpan = phantom.Amount[tick, uint64]

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	sessions := make(map[sessionID]cpuTime, 1024)
	slice := phantom.NewAmount[tick](uint64(250))
	var total cpuSpan
	for i := 0; i < 100000; i++ {
		id := phantom.NewID[session](uint64(i & 1023))
		start := phantom.NewInstant[tick](uint64(i))
		sessions[id] = start.Add(slice)
		total = total.Add(sessions[id].Sub(start))
	}
	log.Println("total span:", total)
	pprof.WriteHeapProfile(f)
}
