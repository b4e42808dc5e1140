package i8080

// readReg8/writeReg8 address the eight-way register field used throughout
// the 8080 encoding (MOV, ALU-reg, MVI, INR/DCR): 0=B 1=C 2=D 3=E 4=H 5=L
// 6=(HL) 7=A. Mirrors cpu_z80.go's readReg8/writeReg8 switch-by-code shape.
func (c *CPU) readReg8(code byte) byte {
	switch code {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.mem[c.HL()]
	default:
		return c.A
	}
}

func (c *CPU) writeReg8(code, value byte) {
	switch code {
	case 0:
		c.B = value
	case 1:
		c.C = value
	case 2:
		c.D = value
	case 3:
		c.E = value
	case 4:
		c.H = value
	case 5:
		c.L = value
	case 6:
		c.mem[c.HL()] = value
	default:
		c.A = value
	}
}

// rpGet/rpSet address the two-bit register-pair field (00=BC 01=DE 10=HL
// 11=SP) used by LXI/DAD/INX/DCX.
func (c *CPU) rpGet(code byte) uint16 {
	switch code {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	default:
		return c.SP
	}
}

func (c *CPU) rpSet(code byte, v uint16) {
	switch code {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.SetHL(v)
	default:
		c.SP = v
	}
}

func (c *CPU) movRegReg(dest, src byte) {
	c.writeReg8(dest, c.readReg8(src))
}

func (c *CPU) mviReg(dest byte) {
	c.writeReg8(dest, c.fetchByte())
}

func (c *CPU) lda() {
	addr := c.fetchWord()
	c.A = c.mem[addr]
}

func (c *CPU) sta() {
	addr := c.fetchWord()
	c.mem[addr] = c.A
}

func (c *CPU) lhld() {
	addr := c.fetchWord()
	c.L = c.mem[addr]
	c.H = c.mem[addr+1]
}

func (c *CPU) shld() {
	addr := c.fetchWord()
	c.mem[addr] = c.L
	c.mem[addr+1] = c.H
}

func (c *CPU) ldax(addr uint16) {
	c.A = c.mem[addr]
}

func (c *CPU) stax(addr uint16) {
	c.mem[addr] = c.A
}

func (c *CPU) xchg() {
	c.H, c.D = c.D, c.H
	c.L, c.E = c.E, c.L
}

func (c *CPU) xthl() {
	sp := c.SP
	lo, hi := c.mem[sp], c.mem[sp+1]
	c.mem[sp], c.mem[sp+1] = c.L, c.H
	c.L, c.H = lo, hi
}
