package i8080

import "testing"

func TestMovRegToReg(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.C = 0x99
	cpu.mem[0] = 0x41 // MOV B,C
	cpu.Step()

	requireEqualU8(t, "B after MOV B,C", cpu.B, 0x99)
}

func TestMovThroughMemory(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.SetHL(0x2000)
	cpu.mem[0x2000] = 0x55
	cpu.mem[0] = 0x7E // MOV A,M
	cpu.Step()

	requireEqualU8(t, "A after MOV A,M", cpu.A, 0x55)
}

func TestMviLoadsImmediateIntoRegister(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.mem[0] = 0x06 // MVI B,d8
	cpu.mem[1] = 0x77
	cpu.Step()

	requireEqualU8(t, "B after MVI B", cpu.B, 0x77)
	requireEqualU16(t, "PC after MVI B", cpu.PC, 2)
}

func TestLdaStaRoundTrip(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.A = 0xAB
	cpu.mem[0] = 0x32 // STA 0x3000
	cpu.mem[1] = 0x00
	cpu.mem[2] = 0x30
	cpu.Step()
	requireEqualU8(t, "mem[0x3000] after STA", cpu.mem[0x3000], 0xAB)

	cpu.A = 0
	cpu.mem[3] = 0x3A // LDA 0x3000
	cpu.mem[4] = 0x00
	cpu.mem[5] = 0x30
	cpu.Step()
	requireEqualU8(t, "A after LDA", cpu.A, 0xAB)
}

func TestShldLhldRoundTrip(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.SetHL(0xBEEF)
	cpu.mem[0] = 0x22 // SHLD 0x4000
	cpu.mem[1] = 0x00
	cpu.mem[2] = 0x40
	cpu.Step()
	requireEqualU8(t, "low byte at 0x4000", cpu.mem[0x4000], 0xEF)
	requireEqualU8(t, "high byte at 0x4001", cpu.mem[0x4001], 0xBE)

	cpu.SetHL(0)
	cpu.mem[3] = 0x2A // LHLD 0x4000
	cpu.mem[4] = 0x00
	cpu.mem[5] = 0x40
	cpu.Step()
	requireEqualU16(t, "HL after LHLD", cpu.HL(), 0xBEEF)
}

func TestStaxLdaxBothPairs(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.SetBC(0x5000)
	cpu.A = 0x11
	cpu.mem[0] = 0x02 // STAX B
	cpu.Step()
	requireEqualU8(t, "mem at BC after STAX B", cpu.mem[0x5000], 0x11)

	cpu.SetDE(0x6000)
	cpu.A = 0x22
	cpu.mem[1] = 0x12 // STAX D
	cpu.Step()
	requireEqualU8(t, "mem at DE after STAX D", cpu.mem[0x6000], 0x22)

	cpu.A = 0
	cpu.mem[2] = 0x0A // LDAX B
	cpu.Step()
	requireEqualU8(t, "A after LDAX B", cpu.A, 0x11)

	cpu.A = 0
	cpu.mem[3] = 0x1A // LDAX D
	cpu.Step()
	requireEqualU8(t, "A after LDAX D", cpu.A, 0x22)
}

func TestXchgSwapsHLAndDE(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.SetHL(0x1234)
	cpu.SetDE(0x5678)
	cpu.mem[0] = 0xEB // XCHG
	cpu.Step()

	requireEqualU16(t, "HL after XCHG", cpu.HL(), 0x5678)
	requireEqualU16(t, "DE after XCHG", cpu.DE(), 0x1234)
}

func TestXthlSwapsHLWithTopOfStack(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.SP = 0x8000
	cpu.mem[0x8000] = 0xCD
	cpu.mem[0x8001] = 0xAB
	cpu.SetHL(0x1111)
	cpu.mem[0] = 0xE3 // XTHL
	cpu.Step()

	requireEqualU16(t, "HL after XTHL", cpu.HL(), 0xABCD)
	requireEqualU8(t, "stack low byte after XTHL", cpu.mem[0x8000], 0x11)
	requireEqualU8(t, "stack high byte after XTHL", cpu.mem[0x8001], 0x11)
}
