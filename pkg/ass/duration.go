package ass

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseTimestamp decodes the H:MM:SS.cc wire form. Hours may be any width;
// the fraction is centiseconds.
func ParseTimestamp(s string) (time.Duration, bool) {
	ts, subsec, ok := strings.Cut(s, ".")
	if !ok {
		return 0, false
	}
	units := strings.SplitN(ts, ":", 3)
	if len(units) != 3 {
		return 0, false
	}
	hours, err := strconv.ParseUint(units[0], 10, 64)
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.ParseUint(units[1], 10, 64)
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.ParseUint(units[2], 10, 64)
	if err != nil {
		return 0, false
	}
	cs, err := strconv.ParseUint(subsec, 10, 32)
	if err != nil {
		return 0, false
	}
	secs := hours*3600 + minutes*60 + seconds
	return time.Duration(secs)*time.Second + time.Duration(cs)*10*time.Millisecond, true
}

// FormatTimestamp renders a duration as H:MM:SS.cc, truncating anything below
// centisecond resolution.
func FormatTimestamp(d time.Duration) string {
	centi := d.Milliseconds() / 10
	return fmt.Sprintf("%d:%02d:%02d.%02d",
		centi/360000, (centi/6000)%60, (centi/100)%60, centi%100)
}

func saturatingSub(d, offset time.Duration) time.Duration {
	if offset >= d {
		return 0
	}
	return d - offset
}
