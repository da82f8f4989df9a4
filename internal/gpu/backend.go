// Package gpu selects and times the backend that evaluates the batch
// pair-collision-time kernel the event series uses to refresh a moved
// particle's predictions against every other particle in the store. It
// keeps the teacher's compute-mode and performance-tracking shape, adapted
// from a GPU/CPU choice for FFT work to a GPU/CPU choice for the geometry
// kernel; no OpenGL compute context is ever initialized, so GPU mode always
// resolves to the CPU path, exactly as the teacher's fallback manager
// resolves to CPU when no context is available.
package gpu

import (
	"sync"
	"time"

	"hardsphere/internal/gas"
	"hardsphere/internal/geometry"
)

// ComputeMode selects which backend evaluates the batch kernel.
type ComputeMode int

const (
	// ModeAuto runs the CPU path; ActiveProcessor selects the GPU only in
	// ModeGPU.
	ModeAuto ComputeMode = iota
	// ModeCPU forces the CPU path.
	ModeCPU
	// ModeGPU forces the GPU path, falling back to CPU if unavailable.
	ModeGPU
)

func (m ComputeMode) String() string {
	switch m {
	case ModeAuto:
		return "Auto"
	case ModeCPU:
		return "CPU"
	case ModeGPU:
		return "GPU"
	default:
		return "Unknown"
	}
}

// ProcessorType identifies which processor actually ran a batch.
type ProcessorType int

const (
	ProcessorTypeCPU ProcessorType = iota
	ProcessorTypeGPU
)

// Stats summarizes recorded timings for one processor type.
type Stats struct {
	Count       int
	TotalTime   float64
	AverageTime float64
}

// PerformanceStats reports recorded timings for both processor types.
type PerformanceStats struct {
	CPUStats Stats
	GPUStats Stats
}

// KernelBackend implements event.PairTimeBatcher: it evaluates
// geometry.BatchTimeToPair for one particle against every partner it is
// given, timing the call and recording it under the processor type that
// ran it.
type KernelBackend struct {
	mu              sync.RWMutex
	mode            ComputeMode
	gpuAvailable    bool
	performanceData map[ProcessorType][]float64
}

// NewKernelBackend returns a backend in Auto mode. gpuAvailable is always
// false: this package never initializes an OpenGL compute context, so
// every mode resolves to the CPU path.
func NewKernelBackend() *KernelBackend {
	return &KernelBackend{
		mode:            ModeAuto,
		gpuAvailable:    false,
		performanceData: make(map[ProcessorType][]float64),
	}
}

// GetMode returns the current compute mode.
func (b *KernelBackend) GetMode() ComputeMode {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.mode
}

// SetMode sets the compute mode.
func (b *KernelBackend) SetMode(mode ComputeMode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mode = mode
}

// IsGPUAvailable reports whether a GPU compute path exists.
func (b *KernelBackend) IsGPUAvailable() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.gpuAvailable
}

// ActiveProcessor reports which processor type BatchTimeToPair will
// actually dispatch to, given the current mode.
func (b *KernelBackend) ActiveProcessor() ProcessorType {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.mode == ModeGPU && b.gpuAvailable {
		return ProcessorTypeGPU
	}
	return ProcessorTypeCPU
}

// BatchTimeToPair evaluates the pair-collision-time kernel for p against
// every entry of others, timing the call and recording it under whichever
// processor type actually ran it.
func (b *KernelBackend) BatchTimeToPair(p gas.Particle, others []gas.Particle) []float64 {
	processor := b.ActiveProcessor()

	start := time.Now()
	times := geometry.BatchTimeToPair(p, others)
	elapsedMs := float64(time.Since(start).Microseconds()) / 1000.0

	b.mu.Lock()
	b.performanceData[processor] = append(b.performanceData[processor], elapsedMs)
	b.mu.Unlock()

	return times
}

// GetPerformanceStats returns the recorded timings for both processor
// types.
func (b *KernelBackend) GetPerformanceStats() *PerformanceStats {
	b.mu.RLock()
	defer b.mu.RUnlock()

	stats := &PerformanceStats{}
	if data, ok := b.performanceData[ProcessorTypeCPU]; ok {
		stats.CPUStats = calculateStats(data)
	}
	if data, ok := b.performanceData[ProcessorTypeGPU]; ok {
		stats.GPUStats = calculateStats(data)
	}
	return stats
}

func calculateStats(data []float64) Stats {
	if len(data) == 0 {
		return Stats{}
	}
	total := 0.0
	for _, v := range data {
		total += v
	}
	return Stats{
		Count:       len(data),
		TotalTime:   total,
		AverageTime: total / float64(len(data)),
	}
}
