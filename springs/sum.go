package springs

import "github.com/cespare/wait"

// Sum returns the sum of count applied to each record.
//
// If parallelism > 1, records are counted by that many goroutines. The
// result does not depend on parallelism.
func Sum(records []Record, count func(Record) uint64, parallelism int) uint64 {
	if parallelism <= 1 || len(records) <= 1 {
		var total uint64
		for _, r := range records {
			total += count(r)
		}
		return total
	}
	if parallelism > len(records) {
		parallelism = len(records)
	}

	results := make([]uint64, len(records))
	work := make(chan int)
	var wg wait.Group
	for i := 0; i < parallelism; i++ {
		wg.Go(func(quit <-chan struct{}) error {
			for i := range work {
				results[i] = count(records[i])
			}
			return nil
		})
	}
	wg.Go(func(quit <-chan struct{}) error {
		defer close(work)
		for i := range records {
			select {
			case work <- i:
			case <-quit:
				return nil
			}
		}
		return nil
	})
	// Workers never fail.
	_ = wg.Wait()

	var total uint64
	for _, n := range results {
		total += n
	}
	return total
}
