package i8080

import "testing"

func TestTerminalPrintableAdvancesCursor(t *testing.T) {
	term := NewTerminal()
	term.Putch('H')
	term.Putch('i')

	row := term.Row(0)
	if row[0] != 'H' || row[1] != 'i' {
		t.Fatalf("row = %q, want Hi...", row[:2])
	}
}

func TestTerminalCarriageReturn(t *testing.T) {
	term := NewTerminal()
	term.Putch('A')
	term.Putch('B')
	term.Putch(0x0D)
	term.Putch('C')

	row := term.Row(0)
	if row[0] != 'C' || row[1] != 'B' {
		t.Fatalf("row = %q, want C overwriting column 0", row[:2])
	}
}

func TestTerminalClear(t *testing.T) {
	term := NewTerminal()
	term.Putch('X')
	term.Putch(0x1A)

	row := term.Row(0)
	if row[0] != ' ' {
		t.Fatalf("clear screen should blank the buffer")
	}
	if term.Cursor() != 0 {
		t.Fatalf("clear screen should home the cursor")
	}
}

func TestTerminalScrollsOnLastRowNewline(t *testing.T) {
	term := NewTerminal()
	term.cursor = term.cols*(term.rows-1) + 5 // last row, column 5
	term.Putch('Z')
	term.Putch(0x0A)

	if term.Cursor() != term.cols*(term.rows-1) {
		t.Fatalf("cursor = %d, want start of last row (%d)", term.Cursor(), term.cols*(term.rows-1))
	}
	row := term.Row(term.rows - 1)
	if row[0] != ' ' {
		t.Fatalf("scrolled-in bottom row should be blank")
	}
}

func TestTerminalLinefeedKeepsColumnWhenNotScrolling(t *testing.T) {
	term := NewTerminal()
	term.cursor = 5 // row 0, column 5
	term.Putch(0x0A)

	if term.Cursor() != term.cols+5 {
		t.Fatalf("cursor = %d, want row 1 column 5 (%d)", term.Cursor(), term.cols+5)
	}
}

func TestTerminalBackspaceWrapsToPreviousRow(t *testing.T) {
	term := NewTerminal()
	term.cursor = term.cols // row 1, column 0
	term.Putch(0x08)

	if term.Cursor() != term.cols-1 {
		t.Fatalf("cursor = %d, want last column of row 0 (%d)", term.Cursor(), term.cols-1)
	}
}

func TestTerminalCursorUpClampsToOrigin(t *testing.T) {
	term := NewTerminal()
	term.cursor = 10 // row 0, column 10
	term.Putch(0x0B)

	if term.Cursor() != 0 {
		t.Fatalf("cursor up from row 0 should clamp to 0, got %d", term.Cursor())
	}
}

func TestTerminalCursorRightWrapsToNextRow(t *testing.T) {
	term := NewTerminal()
	term.cursor = term.cols - 1 // row 0, last column
	term.Putch(0x0C)

	if term.Cursor() != term.cols {
		t.Fatalf("cursor = %d, want start of row 1 (%d)", term.Cursor(), term.cols)
	}
}

func TestTerminalCursorAddressingEscape(t *testing.T) {
	term := NewTerminal()
	term.Putch(0x1B)
	term.Putch('=')
	term.Putch(0x20 + 5)  // row 5
	term.Putch(0x20 + 10) // col 10

	if term.Cursor() != term.cols*5+10 {
		t.Fatalf("cursor = %d, want row 5 col 10 (%d)", term.Cursor(), term.cols*5+10)
	}
}
