package collector

import "fmt"

// FormatBytes renders a byte count as a human-readable 1024-base size.
func FormatBytes(bytes float64) string {
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if bytes < 1024 {
			return fmt.Sprintf("%.2f %s", bytes, unit)
		}
		bytes /= 1024
	}
	return fmt.Sprintf("%.2f PB", bytes)
}

// FormatBitsPerSecond renders a bit rate as a human-readable 1000-base rate.
func FormatBitsPerSecond(bps float64) string {
	for _, unit := range []string{"bps", "Kbps", "Mbps", "Gbps"} {
		if bps < 1000 {
			return fmt.Sprintf("%.2f %s", bps, unit)
		}
		bps /= 1000
	}
	return fmt.Sprintf("%.2f Tbps", bps)
}
