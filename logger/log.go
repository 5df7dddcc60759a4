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

// Package logger is the central log for the emulator. Log entries are tagged
// with the sub-system they originate from and identical consecutive entries
// are collapsed into one.
//
// By default entries accumulate silently. The SetEcho() function directs
// future entries to an io.Writer as they arrive.
package logger

import (
	"fmt"
	"io"
	"strings"
)

// Entry represents a single line/entry in the log.
type Entry struct {
	tag      string
	detail   string
	repeated int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.tag, e.detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// maximum number of entries kept by the central logger.
const maxCentral = 256

type logger struct {
	entries []Entry
	echo    io.Writer
}

// only one central log for the entire application.
var central = &logger{
	entries: make([]Entry, 0, maxCentral),
}

func (l *logger) log(tag, detail string) {
	// newlines would break the one-line-per-entry guarantee
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	if len(l.entries) > 0 {
		e := &l.entries[len(l.entries)-1]
		if e.tag == tag && e.detail == detail {
			e.repeated++
			return
		}
	}

	l.entries = append(l.entries, Entry{tag: tag, detail: detail})
	if len(l.entries) > maxCentral {
		l.entries = l.entries[len(l.entries)-maxCentral:]
	}

	if l.echo != nil {
		e := l.entries[len(l.entries)-1]
		io.WriteString(l.echo, e.String())
	}
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, detail string, args ...interface{}) {
	central.log(tag, fmt.Sprintf(detail, args...))
}

// Clear all entries from the central logger.
func Clear() {
	central.entries = central.entries[:0]
}

// SetEcho directs future log entries to the io.Writer. A nil writer turns
// echoing off.
func SetEcho(output io.Writer) {
	central.echo = output
}

// Write the contents of the central logger to the io.Writer.
func Write(output io.Writer) {
	for i := range central.entries {
		io.WriteString(output, central.entries[i].String())
	}
}

// Tail writes the last number of entries to the io.Writer.
func Tail(output io.Writer, number int) {
	e := central.entries
	if number < len(e) {
		e = e[len(e)-number:]
	}
	for i := range e {
		io.WriteString(output, e[i].String())
	}
}
