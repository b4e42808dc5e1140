// Command exerciser runs an 8080 program under a stub I/O device: IN
// always returns 0, OUT prints the low seven bits of the accumulator as
// a character. Grounded on original_source/8080exer.py's StubIO, wired
// through cobra/pflag the way oisee-z80-optimizer's cmd/z80opt does.
package main

import (
	"fmt"
	"os"

	"github.com/kevinthecheung/go8080"
	"github.com/spf13/cobra"
)

// stubDevice reproduces 8080exer.py's StubIO: IN is always ready and
// always zero, OUT prints the masked byte to stdout.
type stubDevice struct{}

func (stubDevice) In(port byte) (byte, bool) { return 0, true }

func (stubDevice) Out(port, value byte) {
	fmt.Printf("%c", value&0x7F)
}

func main() {
	var bdosFile string

	root := &cobra.Command{
		Use:   "exerciser <program.hex>",
		Short: "Run an Intel HEX program against a stub console",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cpu := i8080.New(stubDevice{})

			programText, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if err := cpu.LoadHex(string(programText)); err != nil {
				return err
			}

			if bdosFile != "" {
				bdosText, err := os.ReadFile(bdosFile)
				if err != nil {
					return err
				}
				if err := cpu.LoadHex(string(bdosText)); err != nil {
					return err
				}
			}

			cpu.PC = 0x0100
			cpu.Run()
			return nil
		},
	}

	root.Flags().StringVar(&bdosFile, "bdos", "", "optional second HEX image providing BDOS stubs")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
