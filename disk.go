package i8080

import (
	"fmt"
	"os"
)

// paddingByte fills the tail of a disk image shorter than its declared
// geometry, matching cpm_disk.py's CPM_Disk.__init__ padding behaviour.
const paddingByte = 0xE5

// Disk is a fixed-geometry floppy image: a flat byte stream sliced into
// tracks and skewed sectors. Grounded on original_source/cpm_disk.py.
type Disk struct {
	path            string
	sectorSize      int
	sectorsPerTrack int
	tracks          int
	writeProtected  bool
	skew            []int // 1-based logical-to-physical sector map

	data [][][]byte // data[track][physicalSector] = sectorSize bytes
}

// NewDisk creates a blank, padding-filled disk image of the given
// geometry. If skew is nil, a skew table is derived via SkewTable.
func NewDisk(sectorSize, sectorsPerTrack, tracks int, writeProtected bool, skew []int) *Disk {
	if skew == nil {
		skew = SkewTable(sectorsPerTrack, 1)
	}
	d := &Disk{
		sectorSize:      sectorSize,
		sectorsPerTrack: sectorsPerTrack,
		tracks:          tracks,
		writeProtected:  writeProtected,
		skew:            skew,
	}
	d.data = make([][][]byte, tracks)
	for t := range d.data {
		d.data[t] = make([][]byte, sectorsPerTrack)
		for s := range d.data[t] {
			sector := make([]byte, sectorSize)
			for i := range sector {
				sector[i] = paddingByte
			}
			d.data[t][s] = sector
		}
	}
	return d
}

// LoadDisk reads a flat disk image from path, padding any short tail with
// 0xE5 out to the declared geometry (original_source/cpm_disk.py).
func LoadDisk(path string, sectorSize, sectorsPerTrack, tracks int, writeProtected bool, skew []int) (*Disk, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	d := NewDisk(sectorSize, sectorsPerTrack, tracks, writeProtected, skew)
	d.path = path

	pos := 0
	for t := 0; t < tracks; t++ {
		for s := 0; s < sectorsPerTrack; s++ {
			n := copy(d.data[t][s], raw[min(pos, len(raw)):min(pos+sectorSize, len(raw))])
			if n < sectorSize {
				for i := n; i < sectorSize; i++ {
					d.data[t][s][i] = paddingByte
				}
			}
			pos += sectorSize
		}
	}
	return d, nil
}

// SkewTable derives the logical-to-physical sector mapping for a track,
// reproducing original_source/cpm_disk.py's make_skew_table exactly:
// start at physical sector 0, step by skewFactor modulo the sector count,
// bumping by one physical sector on collision, then shift the whole table
// to 1-based numbering.
func SkewTable(numSectors, skewFactor int) []int {
	table := []int{0}
	for len(table) < numSectors {
		sec := (table[len(table)-1] + skewFactor) % numSectors
		for contains(table, sec) {
			sec++
		}
		table = append(table, sec)
	}
	out := make([]int, numSectors)
	for i, n := range table {
		out[i] = n + 1
	}
	return out
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// Sector returns the contents of a 1-based logical sector on a 0-based
// track, applying the skew table. The slice aliases the disk's backing
// storage; callers must copy before retaining it across writes.
func (d *Disk) Sector(track, logicalSector int) ([]byte, error) {
	phys, err := d.physicalSector(track, logicalSector)
	if err != nil {
		return nil, err
	}
	return d.data[track][phys], nil
}

// WriteSector overwrites a logical sector and immediately flushes the
// whole image back to its backing file, matching cpm.py's set_sector
// followed by save_image. Writes to a write-protected image are
// dropped without touching the data and return ErrWriteProtected.
func (d *Disk) WriteSector(track, logicalSector int, value []byte) error {
	phys, err := d.physicalSector(track, logicalSector)
	if err != nil {
		return err
	}
	if d.writeProtected {
		return ErrWriteProtected
	}
	copy(d.data[track][phys], value)
	return d.Flush()
}

// physicalSector implements spec.md §4.3's read mapping exactly:
// disk[track][ skew[logical_sector-1] - 1 ].
func (d *Disk) physicalSector(track, logicalSector int) (int, error) {
	if track < 0 || track >= d.tracks {
		return 0, fmt.Errorf("i8080: track %d out of range", track)
	}
	if logicalSector < 1 || logicalSector > d.sectorsPerTrack {
		return 0, fmt.Errorf("i8080: sector %d out of range", logicalSector)
	}
	return d.skew[logicalSector-1] - 1, nil
}

// Flush rewrites the entire image to its backing path, matching
// cpm_disk.py's save_image whole-image-rewrite behaviour.
func (d *Disk) Flush() error {
	if d.path == "" {
		return nil
	}
	buf := make([]byte, 0, d.tracks*d.sectorsPerTrack*d.sectorSize)
	for t := 0; t < d.tracks; t++ {
		for s := 0; s < d.sectorsPerTrack; s++ {
			buf = append(buf, d.data[t][s]...)
		}
	}
	return os.WriteFile(d.path, buf, 0o644)
}

func (d *Disk) WriteProtected() bool { return d.writeProtected }
func (d *Disk) Tracks() int          { return d.tracks }
func (d *Disk) SectorsPerTrack() int { return d.sectorsPerTrack }
func (d *Disk) SectorSize() int      { return d.sectorSize }
