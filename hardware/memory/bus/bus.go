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

package bus

// CPUBus defines the operations the memory system provides to the CPU. One
// load and one store per access width, all addressed with 64-bit byte
// addresses. The CPU does not interpret addresses in any way - address
// decoding, MMIO routing and backing storage are entirely the bus's concern.
//
// The bus decides its own policy on unaligned data accesses: the base
// integer ISA allows an implementation to either support them or raise an
// access fault, and the CPU passes addresses through unmodified.
//
// Errors returned from the bus are emulator errors, not architectural
// faults. The CPU propagates them to its caller untouched.
type CPUBus interface {
	Load8(addr uint64) (uint8, error)
	Load16(addr uint64) (uint16, error)
	Load32(addr uint64) (uint32, error)
	Load64(addr uint64) (uint64, error)

	Store8(addr uint64, data uint8) error
	Store16(addr uint64, data uint16) error
	Store32(addr uint64, data uint32) error
	Store64(addr uint64, data uint64) error
}
