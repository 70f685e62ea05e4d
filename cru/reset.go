package cru

// Software resets. Each reset ID decodes to a 16-line register bank
// (id/16) and a bit within it (id%16); assert and deassert are single
// masked writes, no read-modify-write.

// resetLineCount is the size of the RK3588 reset ID space.
const resetLineCount = 49158

// ResetCtl drives one softrst register bank.
type ResetCtl struct {
	io   RegIO
	base uint32
}

func newResetCtl(io RegIO, base uint32) *ResetCtl {
	return &ResetCtl{io: io, base: base}
}

func (r *ResetCtl) regFor(id ResetID) (uint32, uint32) {
	bank := uint32(id) / 16
	bit := uint32(id) % 16
	return r.base + bank*4, bit
}

// Assert holds the reset line.
func (r *ResetCtl) Assert(id ResetID) {
	reg, bit := r.regFor(id)
	r.io.Write32(reg, (1<<bit)<<16|(1<<bit))
}

// Deassert releases the reset line.
func (r *ResetCtl) Deassert(id ResetID) {
	reg, bit := r.regFor(id)
	r.io.Write32(reg, (1<<bit)<<16)
}

// GlobalSoftResetFirst triggers the chip-level first global soft
// reset. It does not return on real hardware.
func (c *Cru) GlobalSoftResetFirst() {
	c.io.Write32(GLB_SRST_FST, GLB_SRST_FST_VALUE)
}

// GlobalSoftResetSecond triggers the second global soft reset, which
// skips resetting the PMU domain.
func (c *Cru) GlobalSoftResetSecond() {
	c.io.Write32(GLB_SRST_SND, GLB_SRST_SND_VALUE)
}
