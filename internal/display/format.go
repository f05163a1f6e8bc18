package display

import "fmt"

var sizeSuffixes = []string{"B", "KiB", "MiB", "GiB", "TiB"}

// FormatBytes returns a human-readable size. Module zips are typically in
// the KiB-MiB range; anything past TiB is clamped.
func FormatBytes(bytes int64) string {
	size := float64(bytes)
	i := 0
	for size >= 1024 && i < len(sizeSuffixes)-1 {
		size /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d B", bytes)
	}
	return fmt.Sprintf("%.1f %s", size, sizeSuffixes[i])
}
