// Package sysmon samples system-wide CPU and memory usage.
//
// A naive recursion keeps exactly one core busy, which barely moves the
// system-wide average on a many-core machine. Busiest reports the hottest
// core so the load of either executor shows up clearly.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent  float64 // 0.0 .. 100.0, all cores
	BusiestCore float64 // 0.0 .. 100.0, hottest single core
	MemPercent  float64 // 0.0 .. 100.0
}

// Sample collects a single snapshot. CPU figures use interval=0, i.e. the
// delta since the previous call; the first call after start reports zero.
// Fields whose source fails are left at zero.
func Sample() Stats {
	var s Stats
	if total, err := cpu.Percent(0, false); err == nil && len(total) > 0 {
		s.CPUPercent = clamp(total[0])
	}
	if perCore, err := cpu.Percent(0, true); err == nil {
		s.BusiestCore = busiest(perCore)
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = clamp(vmem.UsedPercent)
	}
	return s
}

func busiest(perCore []float64) float64 {
	var hottest float64
	for _, p := range perCore {
		if p > hottest {
			hottest = p
		}
	}
	return clamp(hottest)
}

func clamp(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
