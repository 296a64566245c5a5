package xc320

import "sync"

// BIG-box stage (C6): drives ten LITTLE-boxes under one derived salt and
// folds their output into one 5-word sub-state.
//
// Lane computation (step 2) is independent per lane and, per spec.md §5's
// "inter-lane fork-join" note, MAY be farmed out to a worker pool, gated
// by Context.workers. The fold (step 3) is always run sequentially in
// ascending b, because it is a deterministic XOR-then-add reduction and
// spec.md §5 is explicit that wrapping addition interleaved with XOR is
// not associative, so the fold order must never change regardless of how
// the lanes themselves were computed.
func runBigBoxStage(ctx *Context, i int) [5]uint64 {
	r := i * 2000
	salt := deriveSalt(ctx.h)

	lanes := &ctx.littleBoxState
	for b := 0; b < 10; b++ {
		lane := &lanes[b]
		for k := 0; k < 5; k++ {
			lane[k] = ctx.h[k] ^ salt[k]
			lane[k+5] = ctx.h[k] ^ RC(b*10+k)
		}
	}

	runLane := func(b int) {
		sv := salt[b%5] ^ RC((b*10)&127)
		ctx.backend.littleBoxBatch([]*[10]uint64{&lanes[b]}, sv, r+b*10)
	}

	if ctx.workers > 1 {
		sem := make(chan struct{}, ctx.workers)
		var wg sync.WaitGroup
		for b := 0; b < 10; b++ {
			b := b
			wg.Add(1)
			sem <- struct{}{}
			go func() {
				defer wg.Done()
				defer func() { <-sem }()
				runLane(b)
			}()
		}
		wg.Wait()
	} else {
		for b := 0; b < 10; b++ {
			runLane(b)
		}
	}

	var sub [5]uint64
	for k := 0; k < 5; k++ {
		var acc uint64
		for b := 0; b < 10; b++ {
			acc ^= lanes[b][2*k]
			acc += lanes[b][2*k+1]
		}
		sub[k] = gammaMix(acc, salt[k], RC((i*100+k)&127), uint64(r+1000))
	}
	return sub
}
