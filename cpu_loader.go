package i8080

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// hexRecordRE matches a single Intel HEX record, following the same
// regex structure as original_source/virtual8080.py's load_hex.
var hexRecordRE = regexp.MustCompile(`(?i)^:([0-9a-f]{2})([0-9a-f]{4})([0-9a-f]{2})([0-9a-f]*)([0-9a-f]{2})$`)

const (
	hexRecordData = 0x00
	hexRecordEOF  = 0x01
)

// LoadHex parses Intel HEX records from text and deposits type-00 record
// bytes into memory. Type-01 records stop parsing. Non-matching lines are
// silently skipped. A record whose declared length disagrees with its
// data length fails with ErrBadImageFormat (spec.md §6).
func (c *CPU) LoadHex(text string) error {
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		match := hexRecordRE.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		length, _ := strconv.ParseUint(match[1], 16, 8)
		address, _ := strconv.ParseUint(match[2], 16, 16)
		recType, _ := strconv.ParseUint(match[3], 16, 8)
		data := match[4]

		if len(data)/2 != int(length) {
			return fmt.Errorf("%w: record declares %d bytes, found %d", ErrBadImageFormat, length, len(data)/2)
		}

		switch recType {
		case hexRecordData:
			for i := 0; i < int(length); i++ {
				b, err := strconv.ParseUint(data[i*2:i*2+2], 16, 8)
				if err != nil {
					return fmt.Errorf("%w: %v", ErrBadImageFormat, err)
				}
				c.mem[uint16(address)+uint16(i)] = byte(b)
			}
		case hexRecordEOF:
			return nil
		}
	}
	return scanner.Err()
}
