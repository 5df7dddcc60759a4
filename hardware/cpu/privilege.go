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

// PrivilegeLevel is one of the three RISC-V privilege levels. The core
// enumerates them but contains no transition logic - that arrives with the
// trap subsystem.
type PrivilegeLevel uint8

// The three privilege levels. Level 2 is reserved by the architecture.
const (
	User       PrivilegeLevel = 0x0
	Supervisor PrivilegeLevel = 0x1
	Machine    PrivilegeLevel = 0x3
)

func (pl PrivilegeLevel) String() string {
	switch pl {
	case User:
		return "user"
	case Supervisor:
		return "supervisor"
	case Machine:
		return "machine"
	}
	return "unknown"
}
