package volume

import (
	"testing"

	"github.com/shirou/gopsutil/v4/disk"
)

func TestFilterWritable(t *testing.T) {
	parts := []disk.PartitionStat{
		{Device: "dev1", Mountpoint: "/data", Fstype: "ext4", Opts: []string{"rw", "relatime"}},
		{Device: "dev2", Mountpoint: "/cdrom", Fstype: "iso9660", Opts: []string{"ro"}},
		{Device: "dev3", Mountpoint: "/gone", Fstype: "ext4", Opts: []string{"rw"}},
		{Device: "dev4", Mountpoint: "/media", Fstype: "vfat", Opts: []string{"rw"}},
	}

	existing := map[string]bool{"/data": true, "/cdrom": true, "/media": true}
	isDir := func(path string) bool { return existing[path] }

	vols := filterWritable(parts, isDir)

	if len(vols) != 2 {
		t.Fatalf("got %d volumes, want 2: %+v", len(vols), vols)
	}
	if vols[0].Root != "/data" || vols[1].Root != "/media" {
		t.Errorf("order not preserved: %+v", vols)
	}
	if vols[0].Fstype != "ext4" || vols[0].Device != "dev1" {
		t.Errorf("metadata not carried over: %+v", vols[0])
	}
}

func TestFilterWritableEmpty(t *testing.T) {
	vols := filterWritable(nil, func(string) bool { return true })
	if vols != nil {
		t.Errorf("expected nil for no partitions, got %+v", vols)
	}
}

func TestHasOpt(t *testing.T) {
	tests := []struct {
		name string
		opts []string
		want bool
	}{
		{"present", []string{"rw", "relatime"}, true},
		{"absent", []string{"ro", "noexec"}, false},
		{"empty", nil, false},
		{"no substring match", []string{"rwx"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasOpt(tt.opts, "rw"); got != tt.want {
				t.Errorf("hasOpt(%v, rw) = %v, want %v", tt.opts, got, tt.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		vol  Volume
		want string
	}{
		{"full", Volume{Root: `C:\`, Label: "Data", Fstype: "NTFS"}, `C:\ (Data, NTFS)`},
		{"no label", Volume{Root: "/", Fstype: "ext4"}, "/ (ext4)"},
		{"bare", Volume{Root: "/mnt/usb"}, "/mnt/usb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vol.Describe(); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}
