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

// Package cpu implements the RV64I decode/execute core. Register logic is
// implemented by the File and ProgramCounter types in the registers
// sub-package and instruction encodings by the instructions sub-package.
//
// The CPU does not fetch. One call to ExecuteInstruction() executes one
// already-fetched instruction word to completion: decode, compute, fault
// check, commit. A step that returns a fault commits nothing - the register
// file and program counter are exactly as they were before the call.
//
// Memory is reached through the bus.CPUBus interface and is otherwise
// opaque to the CPU.
package cpu
