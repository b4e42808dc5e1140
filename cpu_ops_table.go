package i8080

// initOps builds the 256-entry opcode dispatch table. Mirrors
// cpu_z80.go's initBaseOps: a literal assignment for every single-purpose
// opcode, plus short loops for the regular MOV/ALU/INR/DCR/MVI blocks
// whose encoding packs a register or register-pair field into the
// opcode byte.
func (c *CPU) initOps() {
	for i := range c.ops {
		c.ops[i] = opUnimplemented
	}

	// Duplicated NOP encodings observed on real silicon (spec.md §4).
	for _, op := range []byte{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		c.ops[op] = opNOP
	}

	// MOV r,r' block: 0x40-0x7F, dst=(op>>3)&7, src=op&7. 0x76 is HLT, not
	// MOV M,M.
	for op := 0x40; op <= 0x7F; op++ {
		opcode := byte(op)
		if opcode == 0x76 {
			c.ops[opcode] = opHLT
			continue
		}
		dst := (opcode >> 3) & 0x07
		src := opcode & 0x07
		c.ops[opcode] = func(c *CPU) { c.movRegReg(dst, src) }
	}

	// ALU reg/mem block: 0x80-0xBF, op=(opcode>>3)&7 maps directly onto
	// aluOp's iota order (ADD ADC SUB SBB ANA XRA ORA CMP), src=opcode&7.
	for op := 0x80; op <= 0xBF; op++ {
		opcode := byte(op)
		alu := aluOp((opcode >> 3) & 0x07)
		src := opcode & 0x07
		c.ops[opcode] = func(c *CPU) { c.performALU(alu, c.readReg8(src)) }
	}

	// INR/DCR/MVI reg block: INR at x4/xC, DCR at x5/xD, MVI at x6/xE
	// within each row, reg=(opcode>>3)&7.
	for _, row := range []byte{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		reg := (row >> 3) & 0x07
		inrOp := row | 0x04
		dcrOp := row | 0x05
		mviOp := row | 0x06
		r := reg
		c.ops[inrOp] = func(c *CPU) { c.writeReg8(r, c.incr8(c.readReg8(r))) }
		c.ops[dcrOp] = func(c *CPU) { c.writeReg8(r, c.decr8(c.readReg8(r))) }
		c.ops[mviOp] = func(c *CPU) { c.mviReg(r) }
	}

	// Register-pair block: LXI/DAD/INX/DCX for BC/DE/HL/SP.
	for rp := byte(0); rp < 4; rp++ {
		base := rp << 4
		r := rp
		c.ops[base|0x01] = func(c *CPU) { c.rpSet(r, c.fetchWord()) }
		c.ops[base|0x09] = func(c *CPU) { c.dad(c.rpGet(r)) }
		c.ops[base|0x03] = func(c *CPU) { c.rpSet(r, c.rpGet(r)+1) }
		c.ops[base|0x0B] = func(c *CPU) { c.rpSet(r, c.rpGet(r)-1) }
	}

	// PUSH/POP for BC/DE/HL/PSW.
	for rp := byte(0); rp < 4; rp++ {
		base := rp << 4
		r := rp
		c.ops[base|0xC1] = func(c *CPU) { c.popRP(r) }
		c.ops[base|0xC5] = func(c *CPU) { c.pushRP(r) }
	}

	// Conditional RET/JMP/CALL: code=(opcode>>3)&7 within each 0xC0 row.
	for code := byte(0); code < 8; code++ {
		base := code << 3
		cc := code
		c.ops[0xC0|base] = func(c *CPU) { c.retCond(cc) }
		c.ops[0xC2|base] = func(c *CPU) { c.jmpCond(cc) }
		c.ops[0xC4|base] = func(c *CPU) { c.callCond(cc) }
		c.ops[0xC7|base] = func(c *CPU) { c.rst(cc) }
	}

	// STAX/LDAX (BC, DE only).
	c.ops[0x02] = func(c *CPU) { c.stax(c.BC()) }
	c.ops[0x12] = func(c *CPU) { c.stax(c.DE()) }
	c.ops[0x0A] = func(c *CPU) { c.ldax(c.BC()) }
	c.ops[0x1A] = func(c *CPU) { c.ldax(c.DE()) }

	c.ops[0x07] = func(c *CPU) { c.rlc() }
	c.ops[0x0F] = func(c *CPU) { c.rrc() }
	c.ops[0x17] = func(c *CPU) { c.ral() }
	c.ops[0x1F] = func(c *CPU) { c.rar() }
	c.ops[0x22] = func(c *CPU) { c.shld() }
	c.ops[0x27] = func(c *CPU) { c.daa() }
	c.ops[0x2A] = func(c *CPU) { c.lhld() }
	c.ops[0x2F] = func(c *CPU) { c.cma() }
	c.ops[0x32] = func(c *CPU) { c.sta() }
	c.ops[0x37] = func(c *CPU) { c.stc() }
	c.ops[0x3A] = func(c *CPU) { c.lda() }
	c.ops[0x3F] = func(c *CPU) { c.cmc() }

	c.ops[0xC3] = func(c *CPU) { c.jmp() }
	c.ops[0xC6] = func(c *CPU) { c.performALU(aluAdd, c.fetchByte()) }
	c.ops[0xC9] = func(c *CPU) { c.ret() }
	c.ops[0xCD] = func(c *CPU) { c.call() }
	c.ops[0xCE] = func(c *CPU) { c.performALU(aluAdc, c.fetchByte()) }
	c.ops[0xD3] = func(c *CPU) { c.outInstr() }
	c.ops[0xD6] = func(c *CPU) { c.performALU(aluSub, c.fetchByte()) }
	c.ops[0xDB] = func(c *CPU) { c.inInstr() }
	c.ops[0xDE] = func(c *CPU) { c.performALU(aluSbb, c.fetchByte()) }
	c.ops[0xE3] = func(c *CPU) { c.xthl() }
	c.ops[0xE6] = func(c *CPU) { c.performALU(aluAna, c.fetchByte()) }
	c.ops[0xE9] = func(c *CPU) { c.pchl() }
	c.ops[0xEB] = func(c *CPU) { c.xchg() }
	c.ops[0xEE] = func(c *CPU) { c.performALU(aluXra, c.fetchByte()) }
	c.ops[0xF3] = func(c *CPU) { /* DI: interrupts not modelled */ }
	c.ops[0xF6] = func(c *CPU) { c.performALU(aluOra, c.fetchByte()) }
	c.ops[0xF9] = func(c *CPU) { c.SP = c.HL() }
	c.ops[0xFB] = func(c *CPU) { /* EI: interrupts not modelled */ }
	c.ops[0xFE] = func(c *CPU) { c.performALU(aluCmp, c.fetchByte()) }

	// Duplicated encodings: 0xCB aliases JMP, 0xD9 aliases RET, 0xDD/0xED/
	// 0xFD alias CALL (spec.md §4 Decode).
	c.ops[0xCB] = c.ops[0xC3]
	c.ops[0xD9] = c.ops[0xC9]
	c.ops[0xDD] = c.ops[0xCD]
	c.ops[0xED] = c.ops[0xCD]
	c.ops[0xFD] = c.ops[0xCD]
}

func opNOP(c *CPU) {}

func opHLT(c *CPU) { c.hlt() }

func opUnimplemented(c *CPU) {}
