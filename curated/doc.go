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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like Errorf() in the fmt
// package, but the pattern doubles as the error's identity:
//
//	e := curated.Errorf("bad value: %d", 10)
//
//	if curated.Is(e, "bad value: %d") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar to Is() but checks for the pattern anywhere
// in the error chain, where the chain is formed by passing one curated error
// as a placeholder value of another.
//
// The IsAny() function answers whether the error is curated at all. This
// distinction carries meaning throughout the emulator: a curated error is an
// expected, architecturally defined condition (for example, a CPU fault that
// the surrounding system is supposed to handle) while an uncurated error
// indicates a problem with the emulation itself.
//
// The Error() function normalises the message chain by removing duplicate
// adjacent parts, where parts are separated by the sub-string ": ". This
// means wrapping sites don't need to worry about creating messages like:
//
//	error: error: not yet implemented
//
// Sentinel patterns should be stored as suitably named const strings in the
// package they relate to.
package curated
