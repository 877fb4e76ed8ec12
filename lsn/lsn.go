// Package lsn models PostgreSQL write-ahead log positions as strong values.
//
// An LSN is a 64-bit byte position in the WAL stream. Its textual form is two
// hexadecimal 32-bit halves separated by a slash, as printed by
// pg_current_wal_lsn(): "16/B374D848".
package lsn

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Azhovan/strong"
)

type (
	lsnTag      struct{}
	segNoTag    struct{}
	offsetTag   struct{}
	timelineTag struct{}
)

type (
	// LSN is a byte position in the WAL stream.
	LSN = strong.Int[uint64, lsnTag]
	// SegNo numbers WAL segment files from the start of the stream.
	SegNo = strong.Int[uint64, segNoTag]
	// Offset is a byte position within one WAL segment.
	Offset = strong.Int[uint32, offsetTag]
	// Timeline identifies a WAL history branch.
	Timeline = strong.Int[uint32, timelineTag]
)

// DefaultSegmentSize is the WAL segment size of a default PostgreSQL build.
const DefaultSegmentSize = 16 << 20

// Bounds of the WAL segment sizes PostgreSQL accepts. Sizes must also be
// powers of two.
const (
	MinSegmentSize = 1 << 20
	MaxSegmentSize = 1 << 30
)

// Size is the length of an LSN on the wire.
const Size = 8

// Invalid is the LSN PostgreSQL uses for "no position".
var Invalid = LSN{}

// ErrInvalidLSN is the sentinel error wrapped by ParseError.
var ErrInvalidLSN = errors.New("invalid LSN")

// ErrInvalidSegmentSize is returned by CheckSegmentSize.
var ErrInvalidSegmentSize = errors.New("invalid WAL segment size")

// ParseError is returned by Parse for malformed input.
type ParseError struct {
	Input  string
	Reason string
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid LSN %q: %s", e.Input, e.Reason)
}

// Unwrap returns ErrInvalidLSN for errors.Is() compatibility.
func (e *ParseError) Unwrap() error { return ErrInvalidLSN }

// New returns the LSN at byte position v.
func New(v uint64) LSN { return strong.NewInt[uint64, lsnTag](v) }

// NewTimeline returns timeline id.
func NewTimeline(id uint32) Timeline { return strong.NewInt[uint32, timelineTag](id) }

// IsValid reports whether l is not Invalid.
func IsValid(l LSN) bool { return l != Invalid }

// Format renders l as "HI/LO" in uppercase hexadecimal without padding.
func Format(l LSN) string {
	v := l.Get()
	return fmt.Sprintf("%X/%X", uint32(v>>32), uint32(v))
}

// Parse reads the "HI/LO" form produced by Format. Either half may have
// leading zeros and lowercase digits, and must fit in 32 bits.
func Parse(s string) (LSN, error) {
	hi, lo, ok := strings.Cut(s, "/")
	if !ok {
		return Invalid, &ParseError{Input: s, Reason: "missing '/' separator"}
	}

	h, err := parseHalf(hi)
	if err != nil {
		return Invalid, &ParseError{Input: s, Reason: "high half: " + err.Error()}
	}
	l, err := parseHalf(lo)
	if err != nil {
		return Invalid, &ParseError{Input: s, Reason: "low half: " + err.Error()}
	}

	var pos LSN
	*pos.Ptr() = h<<32 | l
	return pos, nil
}

func parseHalf(s string) (uint64, error) {
	if s == "" {
		return 0, errors.New("empty")
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			return 0, ne.Err
		}
		return 0, err
	}
	return v, nil
}

// Read reads an LSN in the big-endian 8-byte form used by the streaming
// replication protocol.
func Read(r io.Reader) (LSN, error) {
	var l LSN
	if err := binary.Read(r, binary.BigEndian, l.Ptr()); err != nil {
		return Invalid, fmt.Errorf("read LSN: %w", err)
	}
	return l, nil
}

// Write writes l in the big-endian 8-byte wire form.
func Write(w io.Writer, l LSN) error {
	if err := binary.Write(w, binary.BigEndian, l.Get()); err != nil {
		return fmt.Errorf("write LSN: %w", err)
	}
	return nil
}

// Append appends the wire form of l to b.
func Append(b []byte, l LSN) []byte {
	return binary.BigEndian.AppendUint64(b, l.Get())
}

// CheckSegmentSize reports whether size is a WAL segment size PostgreSQL
// accepts: a power of two between MinSegmentSize and MaxSegmentSize.
func CheckSegmentSize(size uint64) error {
	if size < MinSegmentSize || size > MaxSegmentSize || size&(size-1) != 0 {
		return fmt.Errorf("%w: %d bytes, want a power of two in [%d, %d]",
			ErrInvalidSegmentSize, size, MinSegmentSize, MaxSegmentSize)
	}
	return nil
}

func mustSegmentSize(size uint64) {
	if err := CheckSegmentSize(size); err != nil {
		panic("lsn: " + err.Error())
	}
}

// Segment returns the number of the segment containing l. It panics if
// segSize fails CheckSegmentSize, as do SegmentOffset, FromSegment and
// FileName.
func Segment(l LSN, segSize uint64) SegNo {
	mustSegmentSize(segSize)
	return strong.NewInt[uint64, segNoTag](l.Get() / segSize)
}

// SegmentOffset returns the position of l within its segment.
func SegmentOffset(l LSN, segSize uint64) Offset {
	mustSegmentSize(segSize)
	return strong.NewInt[uint32, offsetTag](uint32(l.Get() % segSize))
}

// FromSegment returns the LSN at offset off in segment seg.
func FromSegment(seg SegNo, off Offset, segSize uint64) LSN {
	mustSegmentSize(segSize)
	return New(seg.Get()*segSize + uint64(off.Get()))
}

// FileName returns the name of the WAL segment file holding seg on timeline
// tli, e.g. "000000010000000000000003".
func FileName(tli Timeline, seg SegNo, segSize uint64) string {
	mustSegmentSize(segSize)
	perID := uint64(1<<32) / segSize
	return fmt.Sprintf("%08X%08X%08X", tli, seg.Get()/perID, seg.Get()%perID)
}
