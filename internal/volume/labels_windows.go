//go:build windows

package volume

import (
	"strings"

	"github.com/yusufpapurcu/wmi"
)

// win32LogicalDisk mirrors the WMI Win32_LogicalDisk fields we query.
// Pointer fields map WMI NULL values instead of failing the whole query.
type win32LogicalDisk struct {
	DeviceID   string
	VolumeName *string
	FileSystem *string
}

// attachLabels fills in volume labels (and missing filesystem names) from
// WMI. Best effort: on query failure the volumes simply stay unlabeled.
func attachLabels(vols []Volume) {
	var disks []win32LogicalDisk
	q := "SELECT DeviceID, VolumeName, FileSystem FROM Win32_LogicalDisk"
	if err := wmi.Query(q, &disks); err != nil {
		return
	}

	byDevice := make(map[string]win32LogicalDisk, len(disks))
	for _, d := range disks {
		byDevice[strings.ToUpper(d.DeviceID)] = d
	}

	for i := range vols {
		// Mount points are reported as "C:\"; DeviceID is "C:".
		key := strings.ToUpper(strings.TrimSuffix(vols[i].Root, `\`))
		d, ok := byDevice[key]
		if !ok {
			continue
		}
		if d.VolumeName != nil {
			vols[i].Label = *d.VolumeName
		}
		if vols[i].Fstype == "" && d.FileSystem != nil {
			vols[i].Fstype = *d.FileSystem
		}
	}
}
