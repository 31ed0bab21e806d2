//-----------------------------------------------------------------------------
// Copyright (c) 2026-present Detlef Stern
//
// This file is part of bobdoc.
//
// bobdoc is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2026-present Detlef Stern
//-----------------------------------------------------------------------------

package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// LogWriter writes log messages to their specified destinations.
type LogWriter interface {
	WriteMessage(level Level, ts time.Time, prefix string, msg string, details []byte) error
}

// LogWriterAdapter adapts an io.Writer to a LogWriter
type LogWriterAdapter struct {
	w       io.Writer
	colored bool
	mx      sync.Mutex // protects buf and serializes w.Write
	buf     []byte
}

// NewLogWriterAdapter creates a new LogWriter from an io.Writer. Levels are
// coloured if the writer is a terminal and NO_COLOR is not set.
func NewLogWriterAdapter(w io.Writer) *LogWriterAdapter {
	return &LogWriterAdapter{
		w:       w,
		colored: isTerminal(w) && os.Getenv("NO_COLOR") == "",
		buf:     make([]byte, 0, 500),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

var levelColor = func() [NeverLevel + 1]*color.Color {
	var result [NeverLevel + 1]*color.Color
	for lv, attrs := range map[Level][]color.Attribute{
		TraceLevel:     {color.FgHiBlack},
		DebugLevel:     {color.FgCyan},
		InfoLevel:      {color.FgGreen},
		WarnLevel:      {color.FgYellow},
		ErrorLevel:     {color.FgRed},
		FatalLevel:     {color.FgHiRed, color.Bold},
		MandatoryLevel: {color.Bold},
	} {
		c := color.New(attrs...)
		c.EnableColor()
		result[lv] = c
	}
	return result
}()

var eol = []byte{'\n'}

// WriteMessage writes the given message to the underlying writer.
func (lwa *LogWriterAdapter) WriteMessage(level Level, ts time.Time, prefix string, msg string, details []byte) error {
	year, month, day := ts.Date()
	hour, minute, second := ts.Clock()

	lwa.mx.Lock()
	defer lwa.mx.Unlock()
	buf := lwa.buf[:0]
	itoa(&buf, year, 4)
	buf = append(buf, '-')
	itoa(&buf, int(month), 2)
	buf = append(buf, '-')
	itoa(&buf, day, 2)
	buf = append(buf, ' ')
	itoa(&buf, hour, 2)
	buf = append(buf, ':')
	itoa(&buf, minute, 2)
	buf = append(buf, ':')
	itoa(&buf, second, 2)
	buf = append(buf, ' ')
	if c := levelColor[min(level, NeverLevel)]; lwa.colored && c != nil {
		buf = append(buf, c.Sprint(level.Format())...)
	} else {
		buf = append(buf, level.Format()...)
	}
	buf = append(buf, ' ')
	if prefix != "" {
		buf = append(buf, prefix...)
		buf = append(buf, ' ')
	}
	buf = append(buf, msg...)
	buf = append(buf, details...)
	buf = append(buf, eol...)
	lwa.buf = buf
	_, err := lwa.w.Write(buf)
	return err
}

func itoa(buf *[]byte, i, wid int) {
	var b [20]byte
	for bp := wid - 1; bp >= 0; bp-- {
		q := i / 10
		b[bp] = byte('0' + i - q*10)
		i = q
	}
	*buf = append(*buf, b[:wid]...)
}
