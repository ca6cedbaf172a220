package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/linkvec/vlist"
)

const opsPerBatch = 1024

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	capacity := flag.Int("capacity", 100000, "Soft ceiling on the list length; pushes back off above it.")
	seed := flag.Int64("seed", 127, "Seed for the random operation stream.")
	verifyEvery := flag.Int("verify-every", 64, "Verify against the model deque every N batches.")
	flag.Parse()

	log.Println("Starting LinkedVec stress test...")

	rng := rand.New(rand.NewSource(*seed))
	list := vlist.New[int64, vlist.NonMax[uint32]]()
	if err := list.TryReserve(*capacity); err != nil {
		log.Fatalf("Failed to reserve %d entries: %v", *capacity, err)
	}

	// Model deque kept in the same logical order as the list.
	model := make([]int64, 0, *capacity)
	var nextPayload int64

	report := &Report{
		Duration: *duration,
		Capacity: *capacity,
		Seed:     *seed,
		OpTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running operation stream for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var batches int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			batchStart := time.Now()
			for i := 0; i < opsPerBatch; i++ {
				runOp(rng, list, &model, &nextPayload, *capacity, report)
			}
			report.OpTime.Samples = append(report.OpTime.Samples, time.Since(batchStart))
			batches++

			if batches%int64(*verifyEvery) == 0 {
				if err := verify(list, model); err != nil {
					log.Fatalf("Divergence after %d batches: %v", batches, err)
				}
				report.Verifications++
			}
		}
	}

	if err := verify(list, model); err != nil {
		log.Fatalf("Divergence at shutdown: %v", err)
	}
	report.Verifications++

	report.TotalTime = time.Since(startTime)
	report.OpTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Printf("Operation stream finished. Final list length: %d", list.Len())

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// runOp applies one random operation to both the list and the model deque.
func runOp(rng *rand.Rand, list *vlist.List[int64, vlist.NonMax[uint32]], model *[]int64, nextPayload *int64, capacity int, report *Report) {
	report.TotalOps++

	op := rng.Intn(6)
	if list.Len() >= capacity && op < 2 {
		op = 2 + rng.Intn(4) // at the ceiling, only shrink or hold
	}

	switch op {
	case 0:
		list.PushBack(*nextPayload)
		*model = append(*model, *nextPayload)
		*nextPayload++
		report.Pushes++
	case 1:
		list.PushFront(*nextPayload)
		*model = append([]int64{*nextPayload}, *model...)
		*nextPayload++
		report.Pushes++
	case 2:
		v, ok := list.PopBack()
		if ok {
			last := len(*model) - 1
			if v != (*model)[last] {
				log.Fatalf("PopBack returned %d, model has %d", v, (*model)[last])
			}
			*model = (*model)[:last]
			report.Pops++
		}
	case 3:
		v, ok := list.PopFront()
		if ok {
			if v != (*model)[0] {
				log.Fatalf("PopFront returned %d, model has %d", v, (*model)[0])
			}
			*model = (*model)[1:]
			report.Pops++
		}
	case 4, 5:
		if list.Len() == 0 {
			return
		}
		p := rng.Intn(list.Len())
		v := list.SwapRemove(p)
		for i, mv := range *model {
			if mv == v {
				*model = append((*model)[:i], (*model)[i+1:]...)
				break
			}
		}
		report.SwapRemoves++
	}
}

// verify checks the list against the model deque: same logical order, and
// the same multiset of surviving payloads independent of physical layout.
func verify(list *vlist.List[int64, vlist.NonMax[uint32]], model []int64) error {
	if list.Len() != len(model) {
		return fmt.Errorf("length mismatch: list has %d, model has %d", list.Len(), len(model))
	}

	i := 0
	for v := range list.Values() {
		if v != model[i] {
			return fmt.Errorf("order mismatch at logical index %d: list has %d, model has %d", i, v, model[i])
		}
		i++
	}

	// Multiset check walks physical slots directly, so it catches payloads
	// that the forward walk above cannot reach through broken links.
	seen := intmap.New[int64, int64](len(model))
	for _, v := range model {
		n, _ := seen.Get(v)
		seen.Put(v, n+1)
	}
	for p := 0; p < list.Len(); p++ {
		v := *list.At(p)
		n, ok := seen.Get(v)
		if !ok || n == 0 {
			return fmt.Errorf("payload %d at physical slot %d is not live in the model", v, p)
		}
		seen.Put(v, n-1)
	}

	return nil
}
