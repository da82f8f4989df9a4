package fft

import (
	"errors"
)

// GPUFFTProcessor is the GPU slot of the FFTProcessor interface. It runs no
// GPU code: each operation delegates to cpuFallback when one is set and
// returns nil otherwise.
type GPUFFTProcessor struct {
	cpuFallback FFTProcessor
	// GPU fields will be added when GPU support is implemented
	// gpu          *gpu.GPU
	// planCache    map[string]*gpu.GPUFFTPlan
	// bufferCache  map[string]*gpu.ComplexGPUBuffer
}

// NewGPUFFTProcessor always returns a nil processor and an error: no GPU
// FFT backend is available.
func NewGPUFFTProcessor() (FFTProcessor, error) {
	// For now, return an error as GPU support is not fully implemented
	// This allows tests to skip gracefully
	return nil, errors.New("GPU FFT not yet implemented")

	// When GPU is ready, uncomment this:
	/*
		gpuContext, err := InitializeGPU()
		if err != nil {
			return nil, err
		}

		return &GPUFFTProcessor{
			gpu:         gpuContext,
			planCache:   make(map[string]*gpu.GPUFFTPlan),
			bufferCache: make(map[string]*gpu.ComplexGPUBuffer),
			cpuFallback: NewFFTProcessor(), // CPU fallback
		}, nil
	*/
}

// Cleanup releases GPU resources
func (p *GPUFFTProcessor) Cleanup() {
	// Cleanup would be implemented when GPU support is added
	// For now, this is a no-op since GPU is not initialized
}

// FFT1D performs one-dimensional FFT using GPU
func (p *GPUFFTProcessor) FFT1D(input []complex128) []complex128 {
	// For now, fall back to CPU
	if p.cpuFallback != nil {
		return p.cpuFallback.FFT1D(input)
	}

	// GPU implementation would go here
	return nil
}

// IFFT1D performs one-dimensional inverse FFT using GPU
func (p *GPUFFTProcessor) IFFT1D(input []complex128) []complex128 {
	// For now, fall back to CPU
	if p.cpuFallback != nil {
		return p.cpuFallback.IFFT1D(input)
	}

	// GPU implementation would go here
	return nil
}

// FFT2D performs two-dimensional FFT using GPU
func (p *GPUFFTProcessor) FFT2D(input [][]complex128) [][]complex128 {
	// For now, fall back to CPU
	if p.cpuFallback != nil {
		return p.cpuFallback.FFT2D(input)
	}

	// GPU implementation would go here
	// This would:
	// 1. Upload data to GPU
	// 2. Execute FFT kernel
	// 3. Download results
	return nil
}

// IFFT2D performs two-dimensional inverse FFT using GPU
func (p *GPUFFTProcessor) IFFT2D(input [][]complex128) [][]complex128 {
	// For now, fall back to CPU
	if p.cpuFallback != nil {
		return p.cpuFallback.IFFT2D(input)
	}

	// GPU implementation would go here
	return nil
}

// Helper functions for GPU operations will be added when GPU support is implemented
