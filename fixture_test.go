package geodat_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idanyas/geodat"
)

// node is one tree node: left pointer (bit 0) and right pointer (bit 1).
type node struct {
	left, right uint32
}

// buildDB assembles a database image: tree nodes, record area at the record
// base, and the structure trailer. When withSegField is true the trailer
// carries the little-endian segment count the city/org editions use.
func buildDB(t *testing.T, width int, edition byte, segments uint32, nodes []node, recordArea []byte, withSegField bool) []byte {
	t.Helper()

	var buf bytes.Buffer
	for _, n := range nodes {
		writeBE(&buf, n.left, width)
		writeBE(&buf, n.right, width)
	}

	if recordArea != nil {
		base := 2 * width * int(segments)
		require.LessOrEqual(t, buf.Len(), base, "tree overlaps record base")
		buf.Write(make([]byte, base-buf.Len()))
		buf.Write(recordArea)
	}

	buf.Write([]byte{0xFF, 0xFF, 0xFF, edition})
	if withSegField {
		buf.Write([]byte{byte(segments), byte(segments >> 8), byte(segments >> 16)})
	}
	return buf.Bytes()
}

func writeBE(buf *bytes.Buffer, v uint32, width int) {
	for i := width - 1; i >= 0; i-- {
		buf.WriteByte(byte(v >> (8 * uint(i))))
	}
}

// encodeCoord encodes a degree value into the 3-byte little-endian
// fixed-point form used by city records.
func encodeCoord(deg float64) []byte {
	v := int(math.Round((deg + 180) * 10000))
	return []byte{byte(v), byte(v >> 8), byte(v >> 16)}
}

// cityRecordBytes packs one city record with literal strings.
func cityRecordBytes(countryIdx byte, region, city, postal string, lat, lon float64, dmaArea int) []byte {
	var buf bytes.Buffer
	buf.WriteByte(countryIdx)
	for _, s := range []string{region, city, postal} {
		buf.WriteString(s)
		buf.WriteByte(0)
	}
	buf.Write(encodeCoord(lat))
	buf.Write(encodeCoord(lon))
	if dmaArea != 0 {
		buf.Write([]byte{byte(dmaArea), byte(dmaArea >> 8), byte(dmaArea >> 16)})
	}
	return buf.Bytes()
}

// Index of "US" in the country tables.
const usIndex = 225

// openFixture opens an in-memory database image.
func openFixture(t *testing.T, img []byte) *geodat.Database {
	t.Helper()
	db, err := geodat.OpenSource(geodat.MemorySource(img))
	require.NoError(t, err)
	return db
}

// simpleCityDB is the minimal round-trip fixture: one root node routing bit 0
// to a literal record and bit 1 to the empty branch. The record sits at
// offset 1 of the record area (offset 0 would collide with the empty-branch
// pointer value).
func simpleCityDB(t *testing.T, edition byte) []byte {
	rec := cityRecordBytes(usIndex, "CA", "Mountain View", "94040", 37.3845, -122.0881, 807*1000+650)
	area := append([]byte{0}, rec...)
	nodes := []node{{left: 1 + 1, right: 1}}
	return buildDB(t, 3, edition, 1, nodes, area, true)
}

// backRefCityDB builds a fixture whose second record references the city
// string of the first through a 3-byte back-reference. Pool pointers must be
// at least 0x010000, so the records sit past a 64 KiB pad.
//
// Returns the image and the addresses routed to the literal and referencing
// records.
func backRefCityDB(t *testing.T) (img []byte, literalAddr, refAddr string) {
	const offA = 0x010000
	const offB = 0x010040

	recA := cityRecordBytes(usIndex, "CA", "Springfield", "94040", 37.3845, -122.0881, 0)
	// Layout of recA: country byte, "CA\0" at +1, city at +4.
	cityPtr := uint32(offA + 4)

	var recB bytes.Buffer
	recB.WriteByte(usIndex)
	recB.WriteByte(0) // empty region
	recB.Write([]byte{byte(cityPtr >> 16), byte(cityPtr >> 8), byte(cityPtr)})
	recB.WriteString("12345")
	recB.WriteByte(0)
	recB.Write(encodeCoord(40.1))
	recB.Write(encodeCoord(-75.5))

	area := make([]byte, offB+recB.Len())
	copy(area[offA:], recA)
	copy(area[offB:], recB.Bytes())

	nodes := []node{{left: 1 + offA, right: 1 + offB}}
	img = buildDB(t, 3, 6, 1, nodes, area, true)
	return img, "0.0.0.0", "128.0.0.1"
}
