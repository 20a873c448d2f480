package client

import (
	"regexp"
	"strconv"
)

var isoDurationPattern = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

var isoDurationUnits = []int64{86400, 3600, 60, 1}

// parseISODuration converts the API's ISO-8601 duration form (e.g. PT1H2M3S)
// to a count of seconds. Unparseable input yields zero rather than an error;
// the API is the authority on what it hands back.
func parseISODuration(s string) int64 {
	m := isoDurationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}

	var total int64
	for i, unit := range isoDurationUnits {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil {
			return 0
		}
		total += n * unit
	}

	return total
}
