package i8080

// aluOp identifies the eight accumulator ALU operations that share one
// register/memory/immediate addressing dispatch (ADD/ADC/SUB/SBB/ANA/
// ORA/XRA/CMP), mirroring cpu_z80.go's aluOp enum and performALU switch.
type aluOp byte

const (
	aluAdd aluOp = iota
	aluAdc
	aluSub
	aluSbb
	aluAna
	aluXra
	aluOra
	aluCmp
)

func parityEven(v byte) bool {
	v ^= v >> 4
	v ^= v >> 2
	v ^= v >> 1
	return v&1 == 0
}

func (c *CPU) setSZP(result byte) {
	c.SetFlag(flagS, result&0x80 != 0)
	c.SetFlag(flagZ, result == 0)
	c.SetFlag(flagP, parityEven(result))
}

// performALU applies op against the accumulator and an operand byte,
// updating A (except for CMP) and all five flags.
func (c *CPU) performALU(op aluOp, value byte) {
	switch op {
	case aluAdd:
		c.addA(value, 0)
	case aluAdc:
		c.addA(value, carryIn(c))
	case aluSub:
		c.subA(value, 0, true)
	case aluSbb:
		c.subA(value, carryIn(c), true)
	case aluAna:
		c.anaA(value)
	case aluXra:
		c.xraA(value)
	case aluOra:
		c.oraA(value)
	case aluCmp:
		c.subA(value, 0, false)
	}
}

func carryIn(c *CPU) byte {
	if c.Flag(flagC) {
		return 1
	}
	return 0
}

func (c *CPU) addA(value, carry byte) {
	a := c.A
	sum := uint16(a) + uint16(value) + uint16(carry)
	result := byte(sum)

	c.setSZP(result)
	c.SetFlag(flagAC, (a&0x0F)+(value&0x0F)+carry > 0x0F)
	c.SetFlag(flagC, sum > 0xFF)
	c.A = result
}

// subA computes A-value-carry. When store is false (CMP) the flags are
// updated but A is left untouched.
func (c *CPU) subA(value, carry byte, store bool) {
	a := c.A
	diff := int(a) - int(value) - int(carry)
	result := byte(diff)

	c.setSZP(result)
	// AC per spec.md §4.1: set iff (A&0xF)-(op&0xF)[-C] >= 0. This is the
	// formula original_source/virtual8080.py uses uniformly for SUB, SBB,
	// CMP and their immediate forms (instr_sub_immed, instr_sbb_immed):
	// it is the source of the documented SUI/SBI "wtf" AC=0 behavior
	// (spec.md §9(b)), reproduced here rather than "corrected".
	lsn := int(a&0x0F) - int(value&0x0F) - int(carry)
	c.SetFlag(flagAC, lsn >= 0)
	c.SetFlag(flagC, diff < 0)
	if store {
		c.A = result
	}
}

func (c *CPU) anaA(value byte) {
	a := c.A
	result := a & value
	c.setSZP(result)
	c.SetFlag(flagAC, (a|value)&0x08 != 0)
	c.SetFlag(flagC, false)
	c.A = result
}

func (c *CPU) oraA(value byte) {
	result := c.A | value
	c.setSZP(result)
	c.SetFlag(flagAC, false)
	c.SetFlag(flagC, false)
	c.A = result
}

func (c *CPU) xraA(value byte) {
	result := c.A ^ value
	c.setSZP(result)
	c.SetFlag(flagAC, false)
	c.SetFlag(flagC, false)
	c.A = result
}

// incr8 implements INR: 8-bit increment affecting S, Z, AC, P (not C).
func (c *CPU) incr8(value byte) byte {
	result := value + 1
	c.setSZP(result)
	c.SetFlag(flagAC, result&0x0F == 0)
	return result
}

// decr8 implements DCR. The auxiliary-carry rule follows
// original_source/virtual8080.py's instr_dcr_reg exactly: set iff
// (pre_val & 0x0F) > 0, which spec.md §9(a) flags as differing from the
// canonical "!= 0" rule. Since a byte's low nibble can never be negative
// the two conditions are equivalent for all 256 input values, so this is
// a textual quirk, not a behavioral one.
func (c *CPU) decr8(value byte) byte {
	result := value - 1
	c.setSZP(result)
	c.SetFlag(flagAC, value&0x0F > 0)
	return result
}

// daa implements DAA per spec.md §4.1 / original_source's instr_daa.
func (c *CPU) daa() {
	acc := c.A
	carry := c.Flag(flagC)
	aux := c.Flag(flagAC)

	low := acc & 0x0F
	if aux || low > 9 {
		acc += 6
		aux = low > 9
	}

	high := acc >> 4
	if carry || high > 9 {
		acc += 0x60
		if !carry {
			carry = high > 9
		}
	}

	c.A = acc
	c.setSZP(acc)
	c.SetFlag(flagAC, aux)
	c.SetFlag(flagC, carry)
}

func (c *CPU) rlc() {
	bit7 := c.A&0x80 != 0
	c.SetFlag(flagC, bit7)
	c.A = c.A << 1
	if bit7 {
		c.A |= 0x01
	}
}

func (c *CPU) rrc() {
	bit0 := c.A&0x01 != 0
	c.SetFlag(flagC, bit0)
	c.A = c.A >> 1
	if bit0 {
		c.A |= 0x80
	}
}

func (c *CPU) ral() {
	carryWas := carryIn(c)
	c.SetFlag(flagC, c.A&0x80 != 0)
	c.A = (c.A << 1) | carryWas
}

func (c *CPU) rar() {
	carryWas := carryIn(c)
	c.SetFlag(flagC, c.A&0x01 != 0)
	c.A = (c.A >> 1) | (carryWas << 7)
}

func (c *CPU) cma() {
	c.A = ^c.A
}

func (c *CPU) stc() {
	c.SetFlag(flagC, true)
}

func (c *CPU) cmc() {
	c.SetFlag(flagC, !c.Flag(flagC))
}

// dad adds a 16-bit register pair into HL. Only C is affected.
func (c *CPU) dad(operand uint16) {
	sum := uint32(c.HL()) + uint32(operand)
	c.SetHL(uint16(sum))
	c.SetFlag(flagC, sum > 0xFFFF)
}
