package cli

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/gmc-client/models"
)

// parseTime accepts epoch milliseconds, RFC 3339 or a plain date.
func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, s, time.Local); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
}

// parseLocation reads "lon,lat".
func parseLocation(s string) (models.Location, error) {
	lon, lat, ok := strings.Cut(s, ",")
	if !ok {
		return models.Location{}, fmt.Errorf("%w: %q, want lon,lat", models.ErrInvalidLocation, s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: %v", models.ErrInvalidLocation, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: %v", models.ErrInvalidLocation, err)
	}

	return models.Location{Lon: x, Lat: y}, nil
}

func parseCode(s string) (int, error) {
	code, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCode, s)
	}
	return code, nil
}

// rangeFlags registers -start and -end on fs.
type rangeFlags struct {
	start, end *string
}

func newRangeFlags(fs *flag.FlagSet) rangeFlags {
	return rangeFlags{
		start: fs.String("start", "", "range start (epoch ms, RFC 3339 or YYYY-MM-DD)"),
		end:   fs.String("end", "", "range end (epoch ms, RFC 3339 or YYYY-MM-DD)"),
	}
}

func (r rangeFlags) timeRange() (models.TimeRange, error) {
	start, err := parseTime(*r.start)
	if err != nil {
		return models.TimeRange{}, err
	}
	end, err := parseTime(*r.end)
	if err != nil {
		return models.TimeRange{}, err
	}
	return models.TimeRange{Start: start, End: end}, nil
}

// positional splits off the first n arguments, which must not look like
// flags, so that flags may follow them.
func positional(args []string, n int, usage string) ([]string, []string, error) {
	if len(args) < n {
		return nil, nil, fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	for _, a := range args[:n] {
		if strings.HasPrefix(a, "-") {
			return nil, nil, fmt.Errorf("%w: %s", ErrUsage, usage)
		}
	}
	return args[:n], args[n:], nil
}

// visited reports which flags were set explicitly.
func visited(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}
