// Package script parses heap workload scripts.
//
// A script is a whitespace-separated token stream: a leading operation
// count followed by that many operations. Three operation forms exist:
//
//	malloc <name> <size>
//	free <name>
//	combine_nearby_free
//
// Names are single lower-case letters, so a script addresses at most
// MaxHandles distinct allocations at a time.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Kind identifies an operation type.
type Kind int

const (
	// KindMalloc allocates a block and binds it to a handle.
	KindMalloc Kind = iota

	// KindFree releases the block bound to a handle.
	KindFree

	// KindCombine merges adjacent free blocks.
	KindCombine
)

// Operation keywords as they appear in script text.
const (
	OpMalloc  = "malloc"
	OpFree    = "free"
	OpCombine = "combine_nearby_free"
)

const (
	// MaxHandles is the number of distinct handle names ('a' through 'z').
	MaxHandles = 26

	// MaxOperations caps the declared operation count.
	MaxOperations = 100
)

var (
	ErrBadCount  = errors.New("script: bad operation count")
	ErrBadOp     = errors.New("script: unknown operation")
	ErrBadName   = errors.New("script: bad handle name")
	ErrBadSize   = errors.New("script: bad size")
	ErrTruncated = errors.New("script: unexpected end of input")
)

// Op is a single parsed operation.
type Op struct {
	Kind Kind
	Name byte // handle letter 'a'..'z'; zero for KindCombine
	Size int  // requested payload bytes; KindMalloc only
}

// String renders the operation in script form.
func (o Op) String() string {
	switch o.Kind {
	case KindMalloc:
		return fmt.Sprintf("%s %c %d", OpMalloc, o.Name, o.Size)
	case KindFree:
		return fmt.Sprintf("%s %c", OpFree, o.Name)
	default:
		return OpCombine
	}
}

// Parse reads a complete script from r. It consumes exactly the declared
// number of operations and validates each one.
func Parse(r io.Reader) ([]Op, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	count, err := parseCount(sc)
	if err != nil {
		return nil, err
	}

	ops := make([]Op, 0, count)
	for i := 0; i < count; i++ {
		op, err := parseOp(sc)
		if err != nil {
			return nil, fmt.Errorf("op %d: %w", i+1, err)
		}
		ops = append(ops, op)
	}
	return ops, sc.Err()
}

func parseCount(sc *bufio.Scanner) (int, error) {
	tok, err := next(sc)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadCount, tok)
	}
	if n > MaxOperations {
		return 0, fmt.Errorf("%w: %d exceeds limit %d", ErrBadCount, n, MaxOperations)
	}
	return n, nil
}

func parseOp(sc *bufio.Scanner) (Op, error) {
	tok, err := next(sc)
	if err != nil {
		return Op{}, err
	}
	switch tok {
	case OpMalloc:
		name, err := parseName(sc)
		if err != nil {
			return Op{}, err
		}
		size, err := parseSize(sc)
		if err != nil {
			return Op{}, err
		}
		return Op{Kind: KindMalloc, Name: name, Size: size}, nil
	case OpFree:
		name, err := parseName(sc)
		if err != nil {
			return Op{}, err
		}
		return Op{Kind: KindFree, Name: name}, nil
	case OpCombine:
		return Op{Kind: KindCombine}, nil
	default:
		return Op{}, fmt.Errorf("%w: %q", ErrBadOp, tok)
	}
}

func parseName(sc *bufio.Scanner) (byte, error) {
	tok, err := next(sc)
	if err != nil {
		return 0, err
	}
	if len(tok) != 1 || tok[0] < 'a' || tok[0] > 'z' {
		return 0, fmt.Errorf("%w: %q", ErrBadName, tok)
	}
	return tok[0], nil
}

func parseSize(sc *bufio.Scanner) (int, error) {
	tok, err := next(sc)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadSize, tok)
	}
	return n, nil
}

func next(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", ErrTruncated
	}
	return sc.Text(), nil
}

// Index maps a handle name to its slot in a handle table.
func Index(name byte) int {
	return int(name - 'a')
}
