package dataset

import (
	"os"
	"strings"
)

// SourceStamp identifies one source file by path, size and modification time
type SourceStamp struct {
	Table   string
	Source  string
	Size    int64
	ModTime int64 // unix nanoseconds
}

// Stamp stats the three sources. ok is false when any source is remote or
// cannot be stat'ed, in which case a cached snapshot cannot be validated.
func Stamp(src Sources) (stamps []SourceStamp, ok bool) {
	for _, t := range []struct{ table, source string }{
		{TableRoutes, src.Routes},
		{TableDrivers, src.Drivers},
		{TableTrips, src.Trips},
	} {
		if t.source == "" || strings.HasPrefix(t.source, "http://") || strings.HasPrefix(t.source, "https://") {
			return nil, false
		}
		fi, err := os.Stat(t.source)
		if err != nil {
			return nil, false
		}
		stamps = append(stamps, SourceStamp{
			Table:   t.table,
			Source:  t.source,
			Size:    fi.Size(),
			ModTime: fi.ModTime().UnixNano(),
		})
	}
	return stamps, true
}
