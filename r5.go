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

// R5 is a 64-bit RISC-V system emulator. The long-term goal is a machine
// capable of booting an unmodified Linux kernel.
//
// The repository currently contains the RV64I decode/execute core (see the
// hardware directory). The surrounding system - memory bus devices, trap
// delivery, guest loading - is still to come, so the entry point deliberately
// does nothing yet.
package main

func main() {
}
