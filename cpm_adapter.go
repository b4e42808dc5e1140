package i8080

import (
	"log/slog"
	"os"
	"time"
)

// bankSize is the size of the switchable low region of memory; the top
// 4 KiB (0xF000-0xFFFF) is shared across all banks, per spec.md §4.4.
const bankSize = 0xF000

const (
	portConsoleStatus = 0x00
	portConsoleData   = 0x01
	portListStatus    = 0x02
	portListData      = 0x03

	portClockDayHi = 0x10
	portClockDayLo = 0x11
	portClockHour  = 0x12
	portClockMin   = 0x13
	portClockSec   = 0x14

	portBankSelect = 0x20

	portDiskCommand  = 0xF9
	portDriveSelect  = 0xFA
	portTrackSelect  = 0xFB
	portSectorSelect = 0xFC
	portDMAHigh      = 0xFD
	portDMALow       = 0xFE
	portDMABank      = 0xFF
)

// Disk controller commands written to portDiskCommand.
const (
	diskCmdRead  = 0x00
	diskCmdWrite = 0x01
)

const driveCount = 16

// cpmEpochShiftYears is how far back the wall clock is shifted to land on
// the CP/M epoch (1977-12-31 = day 0), per spec.md §4.4's "configurable;
// 28 in the source".
const cpmEpochShiftYears = 28

var cpmEpoch = time.Date(1977, time.December, 31, 0, 0, 0, 0, time.UTC)

type driveState struct {
	disk  *Disk
	track int
}

// CPMAdapter is the CP/M-BIOS-facing host: banked memory, a 16-drive
// floppy controller with skewed sector geometry, a BCD real-time clock,
// and an ADM-3A console. Grounded on original_source/cpm.py's
// CPM_Machine (port map) and CPM_TTY (console), extended with the
// bank/clock/DMA-bank ports spec.md adds beyond the original.
type CPMAdapter struct {
	cpu *CPU

	banks      map[int]*[bankSize]byte
	activeBank int

	dmaAddr uint16
	dmaBank int

	drives      [driveCount]driveState
	selectedDrv int
	sector      int // 1-based, set by portSectorSelect
	status      byte

	term *Terminal
	in   chan byte

	clock func() time.Time
	log   *slog.Logger
	fatal error
}

// NewCPMAdapter wires a CPU, a console, and a keyboard input channel.
// clock defaults to time.Now when nil.
func NewCPMAdapter(cpu *CPU, term *Terminal, in chan byte, clock func() time.Time) *CPMAdapter {
	if clock == nil {
		clock = time.Now
	}
	return &CPMAdapter{
		cpu:   cpu,
		term:  term,
		in:    in,
		clock: clock,
		banks: map[int]*[bankSize]byte{0: {}},
		log:   slog.New(NewLogHandler(os.Stderr, slog.LevelInfo)),
	}
}

// Err returns the first fatal error observed (an unmapped port), if any.
// Hosts should check this after each Step once I/O is in play, per
// spec.md §7: PortUnknown is a hard error that kills the CPU loop.
func (a *CPMAdapter) Err() error {
	return a.fatal
}

// SetLogger overrides the adapter's diagnostic logger.
func (a *CPMAdapter) SetLogger(log *slog.Logger) {
	a.log = log
}

// MountDrive attaches a disk image to a drive slot (0-15).
func (a *CPMAdapter) MountDrive(drive int, disk *Disk) {
	a.drives[drive] = driveState{disk: disk}
}

// Boot loads track 0, sector 1 of drive 0 into memory at address 0,
// mirroring original_source/cpm.py's boot sequence.
func (a *CPMAdapter) Boot() error {
	d := a.drives[0].disk
	if d == nil {
		return ErrNoSuchDrive
	}
	sector, err := d.Sector(0, 1)
	if err != nil {
		return err
	}
	a.cpu.Load(sector, 0)
	return nil
}

func bcd(v int) byte {
	return byte((v/10)<<4 | v%10)
}

// In implements Device.
func (a *CPMAdapter) In(port byte) (byte, bool) {
	switch port {
	case portConsoleStatus:
		if len(a.in) > 0 {
			return 0xFF, true
		}
		return 0x00, true
	case portConsoleData:
		select {
		case b := <-a.in:
			return b, true
		default:
			return 0, false
		}
	case portListStatus:
		return 0x00, true
	case portClockDayHi, portClockDayLo:
		days := a.cpmDays()
		if port == portClockDayHi {
			return byte(days >> 8), true
		}
		return byte(days), true
	case portClockHour:
		return bcd(a.shiftedNow().Hour()), true
	case portClockMin:
		return bcd(a.shiftedNow().Minute()), true
	case portClockSec:
		return bcd(a.shiftedNow().Second()), true
	case portBankSelect:
		return byte(a.activeBank), true
	case portDiskCommand:
		return a.status, true
	}
	a.fatal = ErrPortUnknown
	a.log.Error("unknown port read", "port", port)
	return 0, false
}

// Out implements Device.
func (a *CPMAdapter) Out(port, value byte) {
	switch port {
	case portConsoleData:
		a.term.Putch(value)
	case portListData:
		// No printer modelled; writes are accepted and discarded.
	case portBankSelect:
		a.swapToBank(int(value))
	case portDriveSelect:
		if int(value) < driveCount {
			a.selectedDrv = int(value)
		}
	case portTrackSelect:
		a.drives[a.selectedDrv].track = int(value)
	case portSectorSelect:
		a.sector = int(value)
	case portDMAHigh:
		a.dmaAddr = (a.dmaAddr & 0x00FF) | uint16(value)<<8
	case portDMALow:
		a.dmaAddr = (a.dmaAddr & 0xFF00) | uint16(value)
	case portDMABank:
		a.dmaBank = int(value)
	case portDiskCommand:
		a.runDiskCommand(value)
	default:
		a.fatal = ErrPortUnknown
		a.log.Error("unknown port write", "port", port, "value", value)
	}
}

func (a *CPMAdapter) shiftedNow() time.Time {
	return a.clock().AddDate(-cpmEpochShiftYears, 0, 0)
}

func (a *CPMAdapter) cpmDays() uint16 {
	d := int(a.shiftedNow().Sub(cpmEpoch).Hours() / 24)
	if d < 0 {
		d = 0
	}
	return uint16(d)
}

// swapToBank snapshots the current bank's lower 0xF000 bytes, loads (or
// lazily creates) the target bank, and returns the bank that was active
// before the swap. A no-op if target is already active (spec.md §4.4).
func (a *CPMAdapter) swapToBank(target int) int {
	previous := a.activeBank
	if target == previous {
		return previous
	}

	current, ok := a.banks[previous]
	if !ok {
		current = &[bankSize]byte{}
		a.banks[previous] = current
	}
	for i := 0; i < bankSize; i++ {
		current[i] = a.cpu.GetMem(uint16(i))
	}

	next, ok := a.banks[target]
	if !ok {
		next = &[bankSize]byte{}
		a.banks[target] = next
	}
	for i := 0; i < bankSize; i++ {
		a.cpu.SetMem(uint16(i), next[i])
	}

	a.activeBank = target
	return previous
}

// runDiskCommand implements OUT 0xF9 per spec.md §4.4: the transfer
// happens through the DMA bank's view of memory, with the previously
// active bank restored before the instruction returns.
func (a *CPMAdapter) runDiskCommand(cmd byte) {
	d := a.drives[a.selectedDrv].disk
	if d == nil {
		a.status = 0xFF
		return
	}
	track := a.drives[a.selectedDrv].track

	previous := a.swapToBank(a.dmaBank)
	defer a.swapToBank(previous)

	n := d.SectorSize()
	if avail := int(0x10000 - uint32(a.dmaAddr)); avail < n {
		n = avail
	}

	switch cmd {
	case diskCmdRead:
		sector, err := d.Sector(track, a.sector)
		if err != nil {
			a.status = 0xFF
			return
		}
		for i := 0; i < n; i++ {
			a.cpu.SetMem(a.dmaAddr+uint16(i), sector[i])
		}
		a.status = 0x00
	case diskCmdWrite:
		buf := make([]byte, d.SectorSize())
		for i := 0; i < n; i++ {
			buf[i] = a.cpu.GetMem(a.dmaAddr + uint16(i))
		}
		if err := d.WriteSector(track, a.sector, buf); err != nil && err != ErrWriteProtected {
			a.status = 0xFF
			return
		}
		a.status = 0x00
	default:
		a.status = 0xFF
	}
}
