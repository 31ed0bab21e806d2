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

package fence

import "errors"

// ErrUnclosedDiagramBlock matches every *UnclosedDiagramBlockError with errors.Is.
var ErrUnclosedDiagramBlock = errors.New("unclosed diagram block")

// UnclosedDiagramBlockError is returned by Finalize, if a diagram block was
// opened but never closed.
type UnclosedDiagramBlockError struct {
	At Position // Position of the fragment with the opening fence
}

func (e *UnclosedDiagramBlockError) Error() string {
	if e.At == nil {
		return ErrUnclosedDiagramBlock.Error()
	}
	return e.At.String() + ": " + ErrUnclosedDiagramBlock.Error()
}

// Is allows errors.Is(err, ErrUnclosedDiagramBlock).
func (*UnclosedDiagramBlockError) Is(target error) bool { return target == ErrUnclosedDiagramBlock }

// RenderError is returned by Finalize, if the embedder failed for a diagram.
type RenderError struct {
	At  Position // Position of the fragment with the opening fence
	Err error
}

func (e *RenderError) Error() string {
	if e.At == nil {
		return "unable to render diagram: " + e.Err.Error()
	}
	return e.At.String() + ": unable to render diagram: " + e.Err.Error()
}

func (e *RenderError) Unwrap() error { return e.Err }
