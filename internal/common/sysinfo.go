/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/common/sysinfo.go
*/
package common

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// SysInfo snapshots host facts the INFO command surfaces alongside this
// server's own memory accounting: total system RAM and logical CPU count.
// Both are best-effort; a gopsutil failure just yields a zero value rather
// than failing the INFO call.
type SysInfo struct {
	TotalMemory uint64
	LogicalCPUs int
}

// ReadSysInfo queries the host for current memory and CPU facts.
func ReadSysInfo() SysInfo {
	var info SysInfo

	if vm, err := mem.VirtualMemory(); err == nil {
		info.TotalMemory = vm.Total
	}

	if counts, err := cpu.Counts(true); err == nil {
		info.LogicalCPUs = counts
	}

	return info
}
