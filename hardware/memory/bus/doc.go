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

// Package bus defines the memory bus concept. The CPU consumes the CPUBus
// interface and nothing else - RAM, MMIO devices and the interconnect that
// decides which is which all live behind it. The package deliberately
// contains no implementation; concrete memory areas will arrive with the
// rest of the machine.
package bus
