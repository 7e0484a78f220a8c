//go:build !windows

package volume

// attachLabels is a no-op off Windows; labels come from WMI only.
func attachLabels([]Volume) {}
