// Command altairhost runs an Altair BASIC HEX image against the 2SIO
// serial adapter, reading the keyboard in raw mode and printing output
// as it arrives. Grounded on original_source/altair_basic.py's
// console_run driving loop and its mutually-exclusive -4/-8/-e BASIC
// variant group.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kevinthecheung/go8080"
	"github.com/spf13/cobra"
)

// basicVariant pairs a BASIC ROM's conventional HEX path with the memory
// size prompt altair_basic.py types at boot to accept the default amount
// of RAM (the "65529" answer, confirmed with Y for Extended BASIC).
type basicVariant struct {
	path string
	init string
}

var (
	variant4K       = basicVariant{"altair_basic_hex/4kbas.hex", "65529\r\rY\r"}
	variant8K       = basicVariant{"altair_basic_hex/8kbas.hex", "65529\r\rY\r"}
	variantExtended = basicVariant{"altair_basic_hex/exbas.hex", "65529\rY\r"}
)

func main() {
	var use4K, use8K, useExtended bool
	var autorunFile string

	root := &cobra.Command{
		Use:   "altairhost",
		Short: "Run an Altair BASIC image over a 2SIO console",
		RunE: func(cmd *cobra.Command, args []string) error {
			variant := variant8K // altair_basic.py's default
			switch {
			case use4K:
				variant = variant4K
			case useExtended:
				variant = variantExtended
			}

			programText, err := os.ReadFile(variant.path)
			if err != nil {
				return err
			}

			initBuffer := ""
			if autorunFile != "" {
				autorunText, err := os.ReadFile(autorunFile)
				if err != nil {
					return err
				}
				initBuffer = variant.init
				for _, line := range strings.SplitAfter(string(autorunText), "\n") {
					initBuffer += strings.ReplaceAll(line, "\n", "\r")
				}
			}

			chanCap := len(initBuffer) + 256
			in := make(chan byte, chanCap)
			out := func(b byte) { fmt.Printf("%c", b) }
			adapter := i8080.NewAltairAdapter(in, out)

			cpu := i8080.New(adapter)
			if err := cpu.LoadHex(string(programText)); err != nil {
				return err
			}

			for _, b := range []byte(initBuffer) {
				in <- b
			}

			keyboard := i8080.NewKeyboardHost(in)
			keyboard.Start()
			defer keyboard.Stop()

			for !cpu.Halted {
				cpu.Step()
				if err := adapter.Err(); err != nil {
					return err
				}
			}
			return nil
		},
	}

	root.Flags().BoolVarP(&use4K, "4k", "4", false, "Load 4K BASIC")
	root.Flags().BoolVarP(&use8K, "8k", "8", false, "Load 8K BASIC")
	root.Flags().BoolVarP(&useExtended, "extended", "e", false, "Load Extended BASIC")
	root.Flags().StringVarP(&autorunFile, "autorun-file", "f", "", "BASIC program typed in at startup")
	root.MarkFlagsMutuallyExclusive("4k", "8k", "extended")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
