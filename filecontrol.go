// Copyright (C) 2025, VigilantDoomer
//
// This file is part of VigilantGen program.
//
// VigilantGen is free software: you can redistribute it
// and/or modify it under the terms of GNU General Public License
// as published by the Free Software Foundation, either version 2 of
// the License, or (at your option) any later version.
//
// VigilantGen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VigilantGen.  If not, see <https://www.gnu.org/licenses/>.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Controls lifetime of the output wad. Data goes to a temporary file next to
// the destination, which replaces the destination only on Success
type FileControl struct {
	success        bool
	fout           *os.File
	tmpFileName    string
	outputFileName string
}

func (fc *FileControl) OpenOutputFile(outputFileName string) (*os.File, error) {
	fc.outputFileName = outputFileName
	var err error
	fc.fout, err = os.CreateTemp(filepath.Dir(outputFileName), "tmp")
	if err != nil {
		fc.fout = nil
		return nil, err
	}
	fc.tmpFileName = fc.fout.Name()
	return fc.fout, nil
}

// Success closes the temporary file and moves it in place of destination
func (fc *FileControl) Success() error {
	if fc.fout == nil {
		Log.Panic("Sanity check failed: descriptor invalid.\n")
	}
	errFout := fc.fout.Close()
	fc.fout = nil
	if errFout != nil {
		return fmt.Errorf("closing output file (after wad was almost ready): %w",
			errFout)
	}
	if err := os.Rename(fc.tmpFileName, fc.outputFileName); err != nil {
		return fmt.Errorf("replacing '%s' with the temporary file: %w",
			fc.outputFileName, err)
	}
	fc.success = true
	return nil
}

// Ensures the output file is closed. Temporary file is getting deleted at this
// moment, unless it has already replaced the destination
func (fc *FileControl) Shutdown() {
	if fc.success {
		return
	}

	var errFout error
	if fc.fout != nil {
		errFout = fc.fout.Close()
		fc.fout = nil
	}

	if errFout != nil {
		Log.Error("Couldn't close output file '%s': %s\n", fc.tmpFileName, errFout.Error())
	}

	if fc.tmpFileName == "" {
		return
	}
	err := os.Remove(fc.tmpFileName)
	if err != nil && !os.IsNotExist(err) {
		Log.Error("Got error when trying to delete a temporary file '%s': %s\n", fc.tmpFileName, err.Error())
	}
}

// Print with platform-specific linebreaks indicated by CRLF argument
func WriterPrintfln(w io.Writer, CRLF bool, format string, a ...interface{}) {
	if len(format) > 0 && format[len(format)-1] == '\n' {
		format = string([]byte(format)[:len(format)-1])
	}
	w.Write([]byte(appendCRLF(CRLF, fmt.Sprintf(format, a...))))
}

func appendCRLF(CRLF bool, s string) string {
	if CRLF {
		return s + "\r\n"
	} else {
		return s + "\n"
	}
}
