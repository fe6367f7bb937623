package alloc

import (
	"github.com/intuitivelabs/slog"
)

// debug logging, off by default

const logName = "heapkit"

const (
	pDBG  = "DBG: " + logName + ": "
	pWARN = "WARNING: " + logName + ": "
)

// Log is the package logger. Reassign or EnableDebug to raise the level.
var Log slog.Log = slog.New(slog.LERR, slog.LlocInfoS, slog.LStdErr)

// EnableDebug switches the package logger to debug level.
func EnableDebug() {
	Log = slog.New(slog.LDBG, slog.LlocInfoS, slog.LStdErr)
}

// DBGon is a shorthand for checking if debug logging is enabled.
func DBGon() bool {
	return Log.L(slog.LDBG)
}

// DBG is a shorthand for logging a debug message.
func DBG(f string, a ...interface{}) {
	Log.LLog(slog.LDBG, 1, pDBG, f, a...)
}

// WARN is a shorthand for logging a warning message.
func WARN(f string, a ...interface{}) {
	Log.LLog(slog.LWARN, 1, pWARN, f, a...)
}

// LogStatus writes the current chain layout to the package log at debug
// level. It is a no-op unless debug logging is enabled.
func (e *Engine) LogStatus() {
	const lev = slog.LDBG
	const prefix = "chain_status "

	if !Log.L(lev) {
		return
	}
	st := e.Stats()
	Log.LLog(lev, 0, prefix, "break= %d cap= %d\n", st.Break, st.Cap)
	Log.LLog(lev, 0, prefix, "blocks= %d (%d free), payload used= %d free= %d, headers= %d\n",
		st.Blocks, st.FreeBlocks, st.UsedBytes, st.FreeBytes, st.HeaderBytes)
	for _, b := range e.Blocks() {
		status := "OCCP"
		if b.Free {
			status = "FREE"
		}
		Log.LLog(lev, 0, prefix, "   %3d.  off=%4d [%s] size=%4d\n",
			b.Index, b.Offset, status, b.Size)
	}
}
