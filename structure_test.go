package geodat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idanyas/geodat"
)

func TestDetectCityEdition(t *testing.T) {
	db := openFixture(t, simpleCityDB(t, 2))
	assert.Equal(t, geodat.EditionCityRev1, db.Edition())
	assert.Equal(t, 32, db.Bits())

	about := db.About()
	assert.Equal(t, uint32(1), about["Segments"])
	assert.Equal(t, 3, about["Node Width (bytes)"])
	assert.Equal(t, int64(6), about["Record Base Offset"])
}

func TestDetectCountryEdition(t *testing.T) {
	img := buildDB(t, 3, 1, 16776960, []node{{left: 16776960 + usIndex, right: 16776960}}, nil, false)
	db := openFixture(t, img)
	assert.Equal(t, geodat.EditionCountry, db.Edition())
	assert.Equal(t, 32, db.Bits())
}

func TestDetectIPv6Edition(t *testing.T) {
	db := openFixture(t, simpleCityDB(t, 30))
	assert.Equal(t, geodat.EditionCityRev1V6, db.Edition())
	assert.Equal(t, 128, db.Bits())
}

// Edition bytes >= 106 carry a bias of 105.
func TestEditionByteBias(t *testing.T) {
	db := openFixture(t, simpleCityDB(t, 2+105))
	assert.Equal(t, geodat.EditionCityRev1, db.Edition())
}

func TestUnsupportedEdition(t *testing.T) {
	for _, id := range []byte{0, 3, 7, 99} {
		img := simpleCityDB(t, id)
		_, err := geodat.OpenSource(geodat.MemorySource(img))
		require.ErrorIs(t, err, geodat.ErrUnsupportedEdition, "edition %d", id)
	}
}

func TestMissingSentinel(t *testing.T) {
	_, err := geodat.OpenSource(geodat.MemorySource(make([]byte, 64)))
	require.ErrorIs(t, err, geodat.ErrCorruptTrailer)
}

func TestShortFile(t *testing.T) {
	_, err := geodat.OpenSource(geodat.MemorySource([]byte{0xFF, 0xFF}))
	require.ErrorIs(t, err, geodat.ErrCorruptTrailer)
}

func TestZeroSegmentCount(t *testing.T) {
	img := buildDB(t, 3, 2, 0, nil, nil, true)
	_, err := geodat.OpenSource(geodat.MemorySource(img))
	require.ErrorIs(t, err, geodat.ErrCorruptTrailer)
}

// A sentinel-like byte run inside the record area must not shadow the real
// trailer: the backward scan takes the last occurrence.
func TestLastSentinelWins(t *testing.T) {
	rec := cityRecordBytes(usIndex, "", "Fake", "", 1.0, 2.0, 0)
	area := append([]byte{0, 0xFF, 0xFF, 0xFF, 99}, rec...)
	nodes := []node{{left: 1 + 5, right: 1}}
	img := buildDB(t, 3, 2, 1, nodes, area, true)

	db := openFixture(t, img)
	assert.Equal(t, geodat.EditionCityRev1, db.Edition())

	lookedUp, err := db.Lookup("0.0.0.0")
	require.NoError(t, err)
	assert.Equal(t, "Fake", lookedUp.City)
}
