package region

import (
	"strconv"
	"strings"
)

// prefixRange assigns a span of three-digit ZIP prefixes to a region.
type prefixRange struct {
	low, high int
	code      Code
}

// zipPrefixes is ordered by low bound. Gaps (territories, military mail,
// unassigned prefixes) resolve to no region.
var zipPrefixes = []prefixRange{
	{5, 5, "NY"},
	{10, 27, "MA"},
	{28, 29, "RI"},
	{30, 38, "NH"},
	{39, 49, "ME"},
	{50, 59, "VT"},
	{60, 69, "CT"},
	{70, 89, "NJ"},
	{100, 149, "NY"},
	{150, 196, "PA"},
	{197, 199, "DE"},
	{200, 205, "DC"},
	{206, 219, "MD"},
	{220, 246, "VA"},
	{247, 268, "WV"},
	{270, 289, "NC"},
	{290, 299, "SC"},
	{300, 319, "GA"},
	{320, 349, "FL"},
	{350, 369, "AL"},
	{370, 385, "TN"},
	{386, 397, "MS"},
	{398, 399, "GA"},
	{400, 427, "KY"},
	{430, 459, "OH"},
	{460, 479, "IN"},
	{480, 499, "MI"},
	{500, 528, "IA"},
	{530, 549, "WI"},
	{550, 567, "MN"},
	{570, 577, "SD"},
	{580, 588, "ND"},
	{590, 599, "MT"},
	{600, 629, "IL"},
	{630, 658, "MO"},
	{660, 679, "KS"},
	{680, 693, "NE"},
	{700, 714, "LA"},
	{716, 729, "AR"},
	{730, 749, "OK"},
	{750, 799, "TX"},
	{800, 816, "CO"},
	{820, 831, "WY"},
	{832, 838, "ID"},
	{840, 847, "UT"},
	{850, 865, "AZ"},
	{870, 884, "NM"},
	{885, 885, "TX"},
	{889, 898, "NV"},
	{900, 961, "CA"},
	{967, 968, "HI"},
	{970, 979, "OR"},
	{980, 994, "WA"},
	{995, 999, "AK"},
}

// FromZIP resolves a five-digit ZIP (ZIP+4 accepted) to its region. The
// boolean is false when the input is malformed or the prefix is unassigned;
// callers that need a region must stop there.
func FromZIP(zip string) (Code, bool) {
	five, ok := NormalizeZIP(zip)
	if !ok {
		return "", false
	}
	prefix, err := strconv.Atoi(five[:3])
	if err != nil {
		return "", false
	}
	for _, r := range zipPrefixes {
		if prefix < r.low {
			break
		}
		if prefix <= r.high {
			return r.code, true
		}
	}
	return "", false
}

// NormalizeZIP trims input and strips a ZIP+4 suffix. It reports false unless
// exactly five digits remain.
func NormalizeZIP(zip string) (string, bool) {
	zip = strings.TrimSpace(zip)
	if base, _, found := strings.Cut(zip, "-"); found {
		zip = base
	}
	if len(zip) != 5 {
		return "", false
	}
	for _, r := range zip {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return zip, true
}
