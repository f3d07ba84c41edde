package gstcalc

import (
	"fmt"
	"time"
)

// GenerateDocumentNumber builds "{prefix}-{YYYY}{MM}-{counter}" with the
// counter zero-padded to four digits, using the current year and month. The
// same counter yields a different number next month; documents are numbered
// per period by convention.
func GenerateDocumentNumber(prefix string, counter int) string {
	return documentNumberAt(prefix, counter, time.Now())
}

func documentNumberAt(prefix string, counter int, now time.Time) string {
	return fmt.Sprintf("%s-%d%02d-%04d", prefix, now.Year(), int(now.Month()), counter)
}
