package alder

import (
	"fmt"
	"os"
)

// globalDebug enables the extra validation in tree operations. Set via
// Scene.SetDebugMode; it is process-wide because objects can be built
// before they are attached to any scene.
var globalDebug bool

// debugNote prints a diagnostic line to stderr when the scene is in debug
// mode.
func (s *Scene) debugNote(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[alder] "+format+"\n", args...)
}

// debugDispatch prints a per-dispatch trace: the input type, how many
// intersections survived dedup, and how many targets the bubble visited.
func (s *Scene) debugDispatch(in PointerInput, hitCount, visited int) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[alder] dispatch %s pointer=%d hits=%d visited=%d\n",
		in.Type, in.PointerID, hitCount, visited)
}

// debugCheckDisposed panics with a descriptive message when a disposed object
// is used in a tree operation. Only called in debug mode; in release mode
// callers skip this entirely.
func debugCheckDisposed(o *Object, op string) {
	if o.disposed {
		panic(fmt.Sprintf("alder debug: %s on disposed object %q (ID was %d)", op, o.Name, o.ID))
	}
}

// debugCheckTreeDepth warns on stderr if an object's depth approaches the
// traversal limit. Raycasting and bubbling both stop at maxTreeDepth, so a
// tree this deep is almost certainly a bug.
const debugWarnTreeDepth = maxTreeDepth / 2

func debugCheckTreeDepth(o *Object) {
	depth := 0
	for p := o; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugWarnTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[alder] warning: tree depth %d exceeds %d (object %q)\n",
			depth, debugWarnTreeDepth, o.Name)
	}
}
