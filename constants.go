package geodat

// Edition identifies the schema of a legacy geolocation database. The value is
// read from the byte following the trailer sentinel; values >= 106 are
// normalized by subtracting 105 first.
type Edition uint8

const (
	EditionCountry    Edition = 1  // IPv4 country
	EditionCityRev1   Edition = 2  // IPv4 city, revision 1 (metro/area codes)
	EditionRegionRev1 Edition = 3  // IPv4 region, revision 1 (not supported)
	EditionISP        Edition = 4  // IPv4 ISP names
	EditionOrg        Edition = 5  // IPv4 organization names
	EditionCityRev0   Edition = 6  // IPv4 city, revision 0
	EditionRegionRev0 Edition = 7  // IPv4 region, revision 0 (not supported)
	EditionASNum      Edition = 9  // IPv4 autonomous system numbers
	EditionCountryV6  Edition = 12 // IPv6 country
	EditionASNumV6    Edition = 21 // IPv6 autonomous system numbers
	EditionCityRev1V6 Edition = 30 // IPv6 city, revision 1
)

// String returns a human-readable edition name, used by About and the CLI.
func (e Edition) String() string {
	switch e {
	case EditionCountry:
		return "Country"
	case EditionCityRev1:
		return "City Rev1"
	case EditionRegionRev1:
		return "Region Rev1"
	case EditionISP:
		return "ISP"
	case EditionOrg:
		return "Organization"
	case EditionCityRev0:
		return "City Rev0"
	case EditionRegionRev0:
		return "Region Rev0"
	case EditionASNum:
		return "ASNum"
	case EditionCountryV6:
		return "Country IPv6"
	case EditionASNumV6:
		return "ASNum IPv6"
	case EditionCityRev1V6:
		return "City Rev1 IPv6"
	}
	return "Unknown"
}

// Internal structure constants.
const (
	trailerSentinelLen = 3    // 0xFF 0xFF 0xFF marks the structure trailer
	trailerWindow      = 4096 // backward search window from end of file
	editionBias        = 105  // edition bytes >= 106 carry this offset

	countrySegments = 16776960 // fixed segment count of the country editions

	segmentFieldLen = 3 // trailer segment-count field, little endian

	standardNodeWidth = 3 // pointer width of most editions
	orgNodeWidth      = 4 // pointer width of the Org/ISP editions

	maxRecordLen = 50  // upper bound of a packed city record
	maxStringLen = 128 // upper bound of any single string field

	// String fields starting with a byte below this value are 3-byte
	// back-references into earlier record data; literal text always starts
	// with a printable byte, so the two ranges cannot collide.
	backRefCeiling = 0x200000

	coordScale  = 10000.0 // fixed-point coordinate scale
	coordOffset = 180.0   // coordinates are stored biased by +180 degrees
)
