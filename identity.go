package hdrhistogram

import "sync/atomic"

// nextIdentity is a process-wide monotonically increasing counter. Its only
// contract is uniqueness and total order across histograms that might ever
// be composed together; it exists so Synchronized.Add/Subtract can acquire
// two histograms' locks in a deterministic order and avoid deadlock.
var identitySeq int64

func nextIdentity() int64 {
	return atomic.AddInt64(&identitySeq, 1)
}
