package bitops

import "golang.org/x/sys/cpu"

// popcountKernel is the population-count implementation selected once at
// process start: a capability interface with the portable table lookup as
// the oracle and a wide/hardware-assisted path chosen when available. Tests
// verify the two agree bit-for-bit over randomized inputs.
var popcountKernel = selectPopcountKernel()

func selectPopcountKernel() func([]byte) int64 {
	if cpu.X86.HasPOPCNT || cpu.ARM64.HasASIMD {
		return countBytesWide
	}
	return countBytesPortable
}
