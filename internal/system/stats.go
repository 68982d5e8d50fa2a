package system

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostStats describes the machine a simulation ran on, for run reports.
type HostStats struct {
	LogicalCPUs int
	CPUModel    string
	TotalMemory uint64
	UsedPercent float64
	GoMaxProcs  int
}

// CollectHostStats queries CPU and memory information. Fields that the
// platform cannot report are left zero; an error is returned only when
// nothing could be collected.
func CollectHostStats() (HostStats, error) {
	stats := HostStats{GoMaxProcs: runtime.GOMAXPROCS(0)}

	var errs []error
	if n, err := cpu.Counts(true); err == nil {
		stats.LogicalCPUs = n
	} else {
		errs = append(errs, err)
	}

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		stats.CPUModel = infos[0].ModelName
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		stats.TotalMemory = vm.Total
		stats.UsedPercent = vm.UsedPercent
	} else {
		errs = append(errs, err)
	}

	if len(errs) == 2 {
		return stats, fmt.Errorf("collect host stats: %w", errs[0])
	}
	return stats, nil
}

// DefaultWorkers returns the number of scenario workers to use when the
// configuration leaves it unset.
func DefaultWorkers() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

func (h HostStats) String() string {
	return fmt.Sprintf("cpus=%d (%s) gomaxprocs=%d mem=%.1fGiB used=%.1f%%",
		h.LogicalCPUs, h.CPUModel, h.GoMaxProcs, float64(h.TotalMemory)/(1<<30), h.UsedPercent)
}
