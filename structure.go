package geodat

import (
	"fmt"
)

// structure holds everything the trailer determines about a database: which
// edition it is, how wide tree pointers are, which address family the tree
// indexes, and where the record area begins. It is computed once at open time
// and never changes afterwards.
type structure struct {
	edition    Edition
	nodeWidth  int
	bits       int    // address bit length the tree supports (32 or 128)
	segments   uint32 // number of internal tree nodes
	recordBase int64  // absolute offset of the record area
}

// detectStructure scans the tail of the file backward for the trailer
// sentinel and derives the database structure from the edition byte that
// follows it. Scanning from the end guarantees the last occurrence wins, so
// sentinel-like byte runs inside record data cannot shadow the real trailer.
func detectStructure(src Source) (*structure, error) {
	size := src.Size()
	window := int64(trailerWindow)
	if size < window {
		window = size
	}
	if window < trailerSentinelLen+1 {
		return nil, fmt.Errorf("geodat: %w: file too short (%d bytes)", ErrCorruptTrailer, size)
	}

	tail := make([]byte, window)
	if err := readFull(src, tail, size-window); err != nil {
		return nil, fmt.Errorf("geodat: failed to read structure trailer: %w", err)
	}

	// Last sentinel in the window, leaving room for the edition byte.
	pos := -1
	for i := len(tail) - trailerSentinelLen - 1; i >= 0; i-- {
		if tail[i] == 0xFF && tail[i+1] == 0xFF && tail[i+2] == 0xFF {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, fmt.Errorf("geodat: %w: sentinel absent in last %d bytes", ErrCorruptTrailer, window)
	}

	id := tail[pos+trailerSentinelLen]
	if id >= editionBias+1 {
		id -= editionBias
	}
	edition := Edition(id)

	s := &structure{edition: edition, nodeWidth: standardNodeWidth, bits: 32}

	switch edition {
	case EditionCountry:
		s.segments = countrySegments
	case EditionCountryV6:
		s.segments = countrySegments
		s.bits = 128
	case EditionCityRev0, EditionCityRev1, EditionCityRev1V6,
		EditionOrg, EditionISP, EditionASNum, EditionASNumV6:
		if edition == EditionOrg || edition == EditionISP {
			s.nodeWidth = orgNodeWidth
		}
		if edition == EditionCityRev1V6 || edition == EditionASNumV6 {
			s.bits = 128
		}
		seg, err := readSegmentField(src, size-window+int64(pos)+trailerSentinelLen+1)
		if err != nil {
			return nil, err
		}
		s.segments = seg
	case EditionRegionRev0, EditionRegionRev1:
		// The region record schema is not part of the documented set; refuse
		// rather than guess it.
		return nil, fmt.Errorf("geodat: %w: %s (id %d)", ErrUnsupportedEdition, edition, id)
	default:
		return nil, fmt.Errorf("geodat: %w: id %d", ErrUnsupportedEdition, id)
	}

	s.recordBase = 2 * int64(s.nodeWidth) * int64(s.segments)
	return s, nil
}

// readSegmentField reads the little-endian segment count stored right after
// the edition byte.
func readSegmentField(src Source, off int64) (uint32, error) {
	buf := make([]byte, segmentFieldLen)
	if err := readFull(src, buf, off); err != nil {
		return 0, fmt.Errorf("geodat: %w: segment count field: %v", ErrCorruptTrailer, err)
	}
	var seg uint32
	for i, b := range buf {
		seg |= uint32(b) << (8 * i)
	}
	if seg == 0 {
		return 0, fmt.Errorf("geodat: %w: zero segment count", ErrCorruptTrailer)
	}
	return seg, nil
}
