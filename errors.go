package rope

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfBounds is the sentinel every IndexOutOfBoundsError wraps.
// Use errors.Is(err, rope.ErrIndexOutOfBounds) to test for it without
// caring about the attempted index or which coordinate space it was in.
var ErrIndexOutOfBounds = errors.New("rope: index out of bounds")

// BoundKind identifies which coordinate space an IndexOutOfBoundsError
// was measured against.
type BoundKind uint8

const (
	// BoundChars means the index was compared against LenChars.
	BoundChars BoundKind = iota
	// BoundUTF16 means the index was compared against LenUTF16.
	BoundUTF16
	// BoundLines means the index was compared against LenLines.
	BoundLines
)

func (k BoundKind) String() string {
	switch k {
	case BoundChars:
		return "chars"
	case BoundUTF16:
		return "utf16 code units"
	case BoundLines:
		return "lines"
	default:
		return "unknown"
	}
}

// IndexOutOfBoundsError is the one failure kind this package produces.
// It carries the attempted index and the upper bound it was checked
// against, so a caller can report a precise diagnostic.
type IndexOutOfBoundsError struct {
	Index int
	Bound int
	Kind  BoundKind
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("rope: index %d out of bounds for %s (len %d)", e.Index, e.Kind, e.Bound)
}

func (e *IndexOutOfBoundsError) Is(target error) bool {
	return target == ErrIndexOutOfBounds
}

// outOfBounds constructs an IndexOutOfBoundsError for the "checked"
// entry points.
func outOfBounds(index, bound int, kind BoundKind) error {
	return &IndexOutOfBoundsError{Index: index, Bound: bound, Kind: kind}
}

// mustInBounds is the "direct" counterpart: it panics with the same
// error value a checked call would have returned. Every direct entry
// point (Insert, Remove, Slice, SplitAt, LineToChar, ...) funnels its
// bounds check through here, or through mustInBoundsStrict (CharAt,
// Line), so the panic payload is always an *IndexOutOfBoundsError
// recoverable via errors.As.
func mustInBounds(index, bound int, kind BoundKind) {
	if index < 0 || index > bound {
		panic(outOfBounds(index, bound, kind))
	}
}

// mustInBoundsStrict is like mustInBounds but excludes the open-ended
// index == bound case, for operations (CharAt, line indexing) where the
// index must name an existing element rather than a valid insertion
// point.
func mustInBoundsStrict(index, bound int, kind BoundKind) {
	if index < 0 || index >= bound {
		panic(outOfBounds(index, bound, kind))
	}
}
