// Command cpmhost boots a CP/M disk image against the banked-memory
// adapter and an ADM-3A console, reading the keyboard in raw mode.
// Wired with cobra/pflag per oisee-z80-optimizer's cmd/z80opt.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kevinthecheung/go8080"
	"github.com/spf13/cobra"
)

func main() {
	var driveFiles []string
	var sectorSize, sectorsPerTrack, tracks int

	root := &cobra.Command{
		Use:   "cpmhost",
		Short: "Boot a CP/M disk image",
		RunE: func(cmd *cobra.Command, args []string) error {
			term := i8080.NewTerminal()
			in := make(chan byte, 256)
			cpu := i8080.New(nil)
			adapter := i8080.NewCPMAdapter(cpu, term, in, nil)
			cpu.SetDevice(adapter)

			for drive, path := range driveFiles {
				if path == "" {
					continue
				}
				disk, err := i8080.LoadDisk(path, sectorSize, sectorsPerTrack, tracks, false, nil)
				if err != nil {
					return fmt.Errorf("drive %d: %w", drive, err)
				}
				adapter.MountDrive(drive, disk)
			}

			if err := adapter.Boot(); err != nil {
				return err
			}

			keyboard := i8080.NewKeyboardHost(in)
			keyboard.Start()
			defer keyboard.Stop()

			const framePeriod = 2000
			for steps := 0; !cpu.Halted; steps++ {
				cpu.Step()
				if err := adapter.Err(); err != nil {
					return err
				}
				if steps%framePeriod == 0 {
					renderTerminal(term)
				}
			}
			renderTerminal(term)
			return nil
		},
	}

	root.Flags().StringArrayVar(&driveFiles, "drive", nil, "disk image path for drive N, in drive order (repeatable)")
	root.Flags().IntVar(&sectorSize, "sector-size", 128, "bytes per disk sector")
	root.Flags().IntVar(&sectorsPerTrack, "sectors-per-track", 26, "sectors per disk track")
	root.Flags().IntVar(&tracks, "tracks", 77, "tracks per disk image")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func renderTerminal(t *i8080.Terminal) {
	var b strings.Builder
	b.WriteString("\x1b[2J\x1b[H")
	for r := 0; r < t.Rows(); r++ {
		b.Write(t.Row(r))
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
}
