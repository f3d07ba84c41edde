package gstcalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDocumentNumberAt(t *testing.T) {
	march := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "SI-202503-0001", documentNumberAt("SI", 1, march))
	assert.Equal(t, "QT-202503-0042", documentNumberAt("QT", 42, march))
	assert.Equal(t, "PO-202503-12345", documentNumberAt("PO", 12345, march))
}

func TestDocumentNumberAt_PerPeriod(t *testing.T) {
	march := time.Date(2025, time.March, 31, 23, 59, 0, 0, time.UTC)
	april := time.Date(2025, time.April, 1, 0, 1, 0, 0, time.UTC)

	// Same counter renders differently across a month boundary on purpose.
	assert.NotEqual(t, documentNumberAt("SI", 7, march), documentNumberAt("SI", 7, april))
	assert.Equal(t, "SI-202504-0007", documentNumberAt("SI", 7, april))
}
