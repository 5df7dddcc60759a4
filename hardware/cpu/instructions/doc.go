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

// Package instructions defines the encoding of the RV64I base integer
// instruction set: the fixed-position fields common to every instruction
// word, the five immediate formats, and the opcode/funct3/funct7 values that
// select individual operations.
//
// The package is purely about encodings. It performs no execution and holds
// no state; the cpu package gives the decoded values their meaning.
package instructions
