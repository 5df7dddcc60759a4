// This file is part of R5.
//
// R5 is free software: you can redistribute it and/or modify it under the
// terms of the GNU General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later
// version.
//
// R5 is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU General Public License for more
// details.
//
// You should have received a copy of the GNU General Public License along
// with R5. If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"github.com/adrian154/R5/hardware/cpu/instructions"
)

// The memory access unit. The effective address is rs1 plus the I-format
// immediate for loads and the S-format immediate for stores. The unit does
// not enforce data alignment - addresses pass to the bus unmodified and the
// bus decides its own policy.

// load implements the LOAD family: one width/sign conversion per funct3
// code, with the actual read delegated to the bus.
func (mc *CPU) load(insn uint32, f instructions.Fields) error {
	addr := mc.Regs.Value(f.Rs1) + uint64(instructions.ImmI(insn))

	var val uint64

	switch f.Funct3 {
	case instructions.LoadLB:
		v, err := mc.mem.Load8(addr)
		if err != nil {
			return err
		}
		val = uint64(int64(int8(v)))

	case instructions.LoadLH:
		v, err := mc.mem.Load16(addr)
		if err != nil {
			return err
		}
		val = uint64(int64(int16(v)))

	case instructions.LoadLW:
		v, err := mc.mem.Load32(addr)
		if err != nil {
			return err
		}
		val = uint64(int64(int32(v)))

	case instructions.LoadLD:
		v, err := mc.mem.Load64(addr)
		if err != nil {
			return err
		}
		val = v

	case instructions.LoadLBU:
		v, err := mc.mem.Load8(addr)
		if err != nil {
			return err
		}
		val = uint64(v)

	case instructions.LoadLHU:
		v, err := mc.mem.Load16(addr)
		if err != nil {
			return err
		}
		val = uint64(v)

	case instructions.LoadLWU:
		v, err := mc.mem.Load32(addr)
		if err != nil {
			return err
		}
		val = uint64(v)

	default:
		return illegal(insn)
	}

	mc.Regs.Load(f.Rd, val)
	return nil
}

// store implements the STORE family: the source register's low bits are
// truncated to the stored width, with the actual write delegated to the bus.
func (mc *CPU) store(insn uint32, f instructions.Fields) error {
	addr := mc.Regs.Value(f.Rs1) + uint64(instructions.ImmS(insn))
	val := mc.Regs.Value(f.Rs2)

	switch f.Funct3 {
	case instructions.StoreSB:
		return mc.mem.Store8(addr, uint8(val))

	case instructions.StoreSH:
		return mc.mem.Store16(addr, uint16(val))

	case instructions.StoreSW:
		return mc.mem.Store32(addr, uint32(val))

	case instructions.StoreSD:
		return mc.mem.Store64(addr, val)
	}

	return illegal(insn)
}
