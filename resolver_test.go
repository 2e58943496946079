package geodat_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idanyas/geodat"
)

// namedCityDB builds a one-record city fixture routing bit 0 to a record with
// the given city name.
func namedCityDB(t *testing.T, edition byte, city string) []byte {
	rec := cityRecordBytes(usIndex, "", city, "", 0, 0, 0)
	area := append([]byte{0}, rec...)
	nodes := []node{{left: 2, right: 1}}
	return buildDB(t, 3, edition, 1, nodes, area, true)
}

func TestResolverFamilyDispatch(t *testing.T) {
	v4 := openFixture(t, namedCityDB(t, 2, "Four"))
	v6 := openFixture(t, namedCityDB(t, 30, "Six"))
	r := geodat.NewResolver(v4, v6)

	rec, err := r.Lookup("1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, "Four", rec.City)

	rec, err = r.Lookup("::1")
	require.NoError(t, err)
	assert.Equal(t, "Six", rec.City)
}

func TestResolverMissingFamily(t *testing.T) {
	v4 := openFixture(t, namedCityDB(t, 2, "Four"))
	r := geodat.NewResolver(v4, nil)

	_, err := r.Lookup("2001:db8::1")
	require.ErrorIs(t, err, geodat.ErrNoDatabaseForFamily)

	_, err = r.Lookup("1.2.3.4")
	require.NoError(t, err)
}

func TestResolverBadAddress(t *testing.T) {
	r := geodat.NewResolver(openFixture(t, simpleCityDB(t, 2)), nil)

	for _, s := range []string{"not-an-ip", "", "256.1.1.1", "1.2.3"} {
		_, err := r.Lookup(s)
		require.ErrorIs(t, err, geodat.ErrParseAddress, "input %q", s)
	}
}

// Repeated lookups of the same address over an unchanged source must return
// identical records.
func TestLookupDeterministic(t *testing.T) {
	db := openFixture(t, simpleCityDB(t, 2))

	first, err := db.Lookup("0.0.0.0")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := db.Lookup("0.0.0.0")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// A single Database must serve concurrent lookups without locking; every
// goroutine must see the same record the sequential baseline saw.
func TestConcurrentLookups(t *testing.T) {
	img, literalAddr, refAddr := backRefCityDB(t)
	db := openFixture(t, img)

	wantA, err := db.Lookup(literalAddr)
	require.NoError(t, err)
	wantB, err := db.Lookup(refAddr)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				a, err := db.Lookup(literalAddr)
				assert.NoError(t, err)
				assert.Equal(t, wantA, a)

				b, err := db.Lookup(refAddr)
				assert.NoError(t, err)
				assert.Equal(t, wantB, b)
			}
		}()
	}
	wg.Wait()
}
