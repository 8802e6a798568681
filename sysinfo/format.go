package sysinfo

import "fmt"

// FormatBytes converts a byte count to a human-readable string with appropriate units.
//
// Example: FormatBytes(1536) returns "1.5 KiB"
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}

// TruncateString shortens s to at most maxLen runes, replacing the tail
// with "..." when it has to cut.
//
// Example: TruncateString("Hello World", 8) returns "Hello..."
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
