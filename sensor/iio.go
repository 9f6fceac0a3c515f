package sensor

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultIIORoot is the sysfs directory of Linux industrial-I/O devices
const DefaultIIORoot = "/sys/bus/iio/devices"

// IIO reads a time-of-flight sensor exposed by a Linux IIO driver such as
// vl53l0x-i2c, which reports in_distance_raw in millimetres
type IIO struct {
	path string
}

// NewIIO opens the distance attribute of a device directory
func NewIIO(deviceDir string) (*IIO, error) {
	path := filepath.Join(deviceDir, "in_distance_raw")
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("iio device %s: %w", deviceDir, err)
	}
	return &IIO{path: path}, nil
}

// FindIIO scans root for a device whose name attribute equals name
func FindIIO(root, name string) (*IIO, error) {
	dirs, err := filepath.Glob(filepath.Join(root, "iio:device*"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	for _, dir := range dirs {
		raw, err := os.ReadFile(filepath.Join(dir, "name"))
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(raw)) == name {
			return NewIIO(dir)
		}
	}
	return nil, fmt.Errorf("iio device %q not found under %s: %w", name, root, os.ErrNotExist)
}

// Path returns the sysfs attribute being read
func (d *IIO) Path() string {
	return d.path
}

// ReadRangeMM implements Ranger; each call triggers one kernel measurement
func (d *IIO) ReadRangeMM() (int, error) {
	raw, err := os.ReadFile(d.path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", d.path, err)
	}
	mm, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", d.path, err)
	}
	if mm <= 0 {
		return 0, ErrOutOfRange
	}
	return mm, nil
}
