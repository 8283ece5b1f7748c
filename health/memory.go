package health

import (
	"context"
	"fmt"
	"runtime"
)

// MemoryCheckerConfig configures the memory health checker.
type MemoryCheckerConfig struct {
	// WarningThreshold is the fraction of MaxAlloc that triggers degraded status.
	// Value should be between 0 and 1. Default: 0.8 (80%)
	WarningThreshold float64

	// CriticalThreshold is the fraction of MaxAlloc that triggers unhealthy status.
	// Value should be between 0 and 1. Default: 0.95 (95%)
	CriticalThreshold float64

	// MaxAlloc is the maximum expected heap allocation in bytes.
	// If zero, the runtime's reported Sys is used.
	MaxAlloc uint64
}

// MemoryChecker checks heap usage against configured thresholds.
type MemoryChecker struct {
	config MemoryCheckerConfig
}

// NewMemoryChecker creates a new memory health checker.
func NewMemoryChecker(config MemoryCheckerConfig) *MemoryChecker {
	if config.WarningThreshold <= 0 || config.WarningThreshold >= 1 {
		config.WarningThreshold = 0.8
	}
	if config.CriticalThreshold <= 0 || config.CriticalThreshold >= 1 {
		config.CriticalThreshold = 0.95
	}
	if config.CriticalThreshold < config.WarningThreshold {
		config.CriticalThreshold = config.WarningThreshold + 0.1
		if config.CriticalThreshold > 1 {
			config.CriticalThreshold = 0.99
		}
	}

	return &MemoryChecker{config: config}
}

// Name returns "memory".
func (m *MemoryChecker) Name() string {
	return "memory"
}

// Check performs the memory health check.
func (m *MemoryChecker) Check(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return Unhealthy("context cancelled", ctx.Err())
	default:
	}

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	maxAlloc := m.config.MaxAlloc
	if maxAlloc == 0 {
		maxAlloc = stats.Sys
	}
	if maxAlloc == 0 {
		return Healthy("memory stats unavailable")
	}

	usageRatio := float64(stats.Alloc) / float64(maxAlloc)

	details := map[string]any{
		"alloc_bytes":   stats.Alloc,
		"max_alloc":     maxAlloc,
		"usage_percent": usageRatio * 100,
		"heap_objects":  stats.HeapObjects,
		"num_gc":        stats.NumGC,
		"goroutines":    runtime.NumGoroutine(),
	}

	if usageRatio >= m.config.CriticalThreshold {
		return Unhealthy(
			fmt.Sprintf("memory usage critical: %.1f%%", usageRatio*100),
			ErrCheckFailed,
		).WithDetails(details)
	}

	if usageRatio >= m.config.WarningThreshold {
		return Degraded(
			fmt.Sprintf("memory usage high: %.1f%%", usageRatio*100),
		).WithDetails(details)
	}

	return Healthy(
		fmt.Sprintf("memory usage normal: %.1f%%", usageRatio*100),
	).WithDetails(details)
}
