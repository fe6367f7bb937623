package heap

import "errors"

var (
	// ErrClosed indicates the heap was used before Open or after Close.
	ErrClosed = errors.New("heap: not open")

	// ErrOutOfSpace indicates a forward break move would pass the end of the arena.
	ErrOutOfSpace = errors.New("heap: break would pass the end of the arena")

	// ErrUnderflow indicates a backward break move would pass the start of the arena.
	ErrUnderflow = errors.New("heap: break would pass the start of the arena")
)
