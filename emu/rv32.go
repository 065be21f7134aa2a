package emu

import "github.com/sarchlab/rv32sim/insts"

var rv32Actions = map[insts.Op]Action{
	insts.OpAUIPC: execAUIPC,
	insts.OpADD:   execADD,
	insts.OpADDI:  execADDI,
}

// execAUIPC: x[rd] = pc + (immU << 12), pc being the advanced value.
func execAUIPC(r *RegFile, _ *Memory, w insts.Word) {
	r.WriteReg(w.Rd(), r.PC+w.ImmU()<<12)
}

// execADD: x[rd] = x[rs1] + x[rs2], wrapping.
func execADD(r *RegFile, _ *Memory, w insts.Word) {
	r.WriteReg(w.Rd(), r.ReadReg(w.Src1())+r.ReadReg(w.Src2()))
}

// execADDI: x[rd] = x[rs1] + immI, wrapping. immI is zero-extended.
func execADDI(r *RegFile, _ *Memory, w insts.Word) {
	r.WriteReg(w.Rd(), r.ReadReg(w.Src1())+w.ImmI())
}
