package adapter

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/gmc-client/models"
)

// query is an insertion-ordered query string. url.Values sorts its keys on
// Encode, while requests must keep full, start and end in that order.
type query []string

func (q query) add(key, value string) query {
	return append(q, url.QueryEscape(key)+"="+url.QueryEscape(value))
}

func (q query) addRange(r models.TimeRange) query {
	if !r.Start.IsZero() {
		q = q.add("start", models.EpochMillis(r.Start))
	}
	if !r.End.IsZero() {
		q = q.add("end", models.EpochMillis(r.End))
	}
	return q
}

// appendTo returns path with the query attached, or path alone when the
// query is empty.
func (q query) appendTo(path string) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + strings.Join(q, "&")
}

func timelineQuery(q models.TimelineQuery) query {
	var out query
	if q.Full {
		out = out.add("full", "y")
	}
	return out.addRange(q.TimeRange)
}

func devicePath(id string, rest ...string) string {
	var b strings.Builder
	b.WriteString("/device/")
	b.WriteString(url.PathEscape(id))
	for _, part := range rest {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(part))
	}
	return b.String()
}
