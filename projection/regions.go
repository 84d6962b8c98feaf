package projection

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// REGIONS - Flat state income tax estimates (50 states + DC)
// =============================================================================

// Region is a state (or DC) with its flat percentage estimate.
type Region struct {
	Name string
	Rate decimal.Decimal
}

// Where a state publishes a range, the midpoint is used.
var regionTable = [][2]string{
	{"Alabama", "5.00"},
	{"Alaska", "0.00"},
	{"Arizona", "2.50"},
	{"Arkansas", "4.90"},
	{"California", "3.00"},
	{"Colorado", "4.40"},
	{"Connecticut", "5.00"},
	{"Delaware", "4.80"},
	{"District of Columbia", "6.00"},
	{"Florida", "0.00"},
	{"Georgia", "5.49"},
	{"Hawaii", "7.20"},
	{"Idaho", "5.80"},
	{"Illinois", "4.95"},
	{"Indiana", "3.05"},
	{"Iowa", "4.40"},
	{"Kansas", "5.25"},
	{"Kentucky", "4.00"},
	{"Louisiana", "4.25"},
	{"Maine", "5.80"},
	{"Maryland", "4.75"},
	{"Massachusetts", "5.00"},
	{"Michigan", "4.25"},
	{"Minnesota", "5.35"},
	{"Mississippi", "4.70"},
	{"Missouri", "4.95"},
	{"Montana", "4.70"},
	{"Nebraska", "5.01"},
	{"Nevada", "0.00"},
	{"New Hampshire", "0.00"},
	{"New Jersey", "1.75"},
	{"New Mexico", "4.90"},
	{"New York", "4.25"},
	{"North Carolina", "4.50"},
	{"North Dakota", "1.50"},
	{"Ohio", "2.75"},
	{"Oklahoma", "4.75"},
	{"Oregon", "8.75"},
	{"Pennsylvania", "3.07"},
	{"Rhode Island", "3.75"},
	{"South Carolina", "6.40"},
	{"South Dakota", "0.00"},
	{"Tennessee", "0.00"},
	{"Texas", "0.00"},
	{"Utah", "4.55"},
	{"Vermont", "3.35"},
	{"Virginia", "5.75"},
	{"Washington", "0.00"},
	{"West Virginia", "4.00"},
	{"Wisconsin", "4.65"},
	{"Wyoming", "0.00"},
}

var regions = func() []Region {
	out := make([]Region, len(regionTable))
	for i, row := range regionTable {
		out[i] = Region{Name: row[0], Rate: decimal.RequireFromString(row[1])}
	}
	return out
}()

// Regions returns the table in alphabetical order. The slice is a copy.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

// RegionNames returns the region names in table order.
func RegionNames() []string {
	names := make([]string, len(regions))
	for i, r := range regions {
		names[i] = r.Name
	}
	return names
}

// LookupRegion finds a region by name, ignoring case and surrounding space.
func LookupRegion(name string) (Region, error) {
	key := strings.TrimSpace(name)
	for _, r := range regions {
		if strings.EqualFold(r.Name, key) {
			return r, nil
		}
	}
	return Region{}, &RegionNotFoundError{Name: name}
}
