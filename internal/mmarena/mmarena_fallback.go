//go:build !unix

// Package mmarena provides platform-specific helpers for reserving the
// anonymous memory region backing a simulated heap.
package mmarena

import "fmt"

// Reserve allocates a plain byte slice when mmap is not available.
func Reserve(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("mmarena: invalid arena size %d", size)
	}
	return make([]byte, size), func() error { return nil }, nil
}
