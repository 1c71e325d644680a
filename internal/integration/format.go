// internal/integration/format.go
package integration

import (
	"fmt"
	"time"
)

var tourTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// FormatTourTime renders a submitted tour timestamp for the email
// templates as "MM/DD/YYYY, H:M". Month and day are zero-padded, hour and
// minute are not — the legacy formatter padded the wrong variables and
// downstream templates grew around the observed output, so it stays.
func FormatTourTime(ts string) string {
	var t time.Time
	var err error
	for _, layout := range tourTimeLayouts {
		t, err = time.Parse(layout, ts)
		if err == nil {
			break
		}
	}
	if err != nil {
		return ts
	}
	return fmt.Sprintf("%02d/%02d/%d, %d:%d", t.Month(), t.Day(), t.Year(), t.Hour(), t.Minute())
}
