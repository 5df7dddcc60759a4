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

// Package hardware is the base package for the machine simulation. The cpu
// sub-package contains the RV64I core and the memory sub-package the bus
// interface the core addresses memory through. A full machine - core plus an
// actual memory implementation plus whatever devices hang off the bus - is
// assembled by the embedding application.
package hardware
