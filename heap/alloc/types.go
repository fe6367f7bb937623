package alloc

// Ref is a payload position: the offset of a block's payload within the
// arena. The block's metadata header occupies the format.HeaderSize bytes
// immediately below it.
type Ref = int

// Block describes one chain entry as reported by a walk.
type Block struct {
	Index  int  // 1-based position counting from the arena start
	Offset int  // header offset within the arena
	Size   int  // payload size in bytes
	Free   bool // true when the block is marked free
}

// Stats summarizes the chain for diagnostics.
type Stats struct {
	Blocks      int // total chain entries
	FreeBlocks  int // entries marked free
	FreeBytes   int // payload bytes in free blocks
	UsedBlocks  int // entries marked occupied
	UsedBytes   int // payload bytes in occupied blocks
	HeaderBytes int // bytes consumed by metadata headers
	Break       int // current break cursor
	Cap         int // fixed arena capacity
}
