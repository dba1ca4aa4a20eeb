package ptfp

import "math"

// batchSize mirrors original_source/main_pba.cpp's get_batch_size lambda:
// it grows sub-linearly (exponent 0.75) with the number of Links already
// emitted (Engine.Run's running count), floored at minBatch and capped at maxBatch (the bulk
// priority queue's configured extract-buffer size).
func batchSize(processed uint64, minBatch, maxBatch int) int {
	bs := int(math.Pow(float64(processed), 0.75))
	if bs < minBatch {
		bs = minBatch
	}
	if bs > maxBatch {
		bs = maxBatch
	}
	return bs
}
