package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512.00 B", FormatBytes(512))
	assert.Equal(t, "1.00 KB", FormatBytes(1024))
	assert.Equal(t, "1.50 MB", FormatBytes(1.5*1024*1024))
	assert.Equal(t, "4.00 GB", FormatBytes(4*1024*1024*1024))
	assert.Equal(t, "2.00 TB", FormatBytes(2*1024*1024*1024*1024))
	assert.Equal(t, "3.00 PB", FormatBytes(3*1024*1024*1024*1024*1024))
	assert.Equal(t, "0.00 B", FormatBytes(0))
}

func TestFormatBitsPerSecond(t *testing.T) {
	assert.Equal(t, "999.00 bps", FormatBitsPerSecond(999))
	assert.Equal(t, "1.00 Kbps", FormatBitsPerSecond(1000))
	assert.Equal(t, "2.50 Mbps", FormatBitsPerSecond(2.5*1000*1000))
	assert.Equal(t, "10.00 Gbps", FormatBitsPerSecond(10*1000*1000*1000))
	assert.Equal(t, "1.20 Tbps", FormatBitsPerSecond(1.2*1000*1000*1000*1000))
}
