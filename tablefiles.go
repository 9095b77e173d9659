/*
 * tablefiles.go, part of openmx.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package openmx

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//the layout of a table file.
type tableFile struct {
	Element []ElementBasisSpec `json:"element" toml:"element"`
}

//TableWrite writes T to w in the given format, "json" or "toml".
//Entries are written in the order given by T.Symbols().
func TableWrite(w io.Writer, T *Table, format string) error {
	tf := tableFile{Element: T.Specs()}
	var err error
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(tf)
	case "toml":
		err = toml.NewEncoder(w).Encode(tf)
	default:
		return Error{ErrUnknownFormat + ": " + format, "", "", []string{"TableWrite"}, true}
	}
	if err != nil {
		return Error{ErrCantWrite + ": " + err.Error(), "", "", []string{"TableWrite"}, true}
	}
	return nil
}

//TableRead reads a table in the given format, "json" or "toml", from r.
func TableRead(r io.Reader, format string) (*Table, error) {
	var tf tableFile
	var err error
	switch strings.ToLower(format) {
	case "json":
		err = json.NewDecoder(r).Decode(&tf)
	case "toml":
		_, err = toml.NewDecoder(r).Decode(&tf)
	default:
		return nil, Error{ErrUnknownFormat + ": " + format, "", "", []string{"TableRead"}, true}
	}
	if err != nil {
		return nil, Error{ErrCantRead + ": " + err.Error(), "", "", []string{"TableRead"}, true}
	}
	T, err := NewTable(tf.Element...)
	if err != nil {
		return nil, errDecorate(err, "TableRead")
	}
	return T, nil
}

//fileFormat deduces the table format and the compression (if any) from
//a file name such as table.toml or table.json.zst
func fileFormat(name string) (format, compression string) {
	name = strings.ToLower(name)
	ext := filepath.Ext(name)
	if ext == ".gz" || ext == ".zst" {
		compression = ext[1:]
		name = strings.TrimSuffix(name, ext)
		ext = filepath.Ext(name)
	}
	return strings.TrimPrefix(ext, "."), compression
}

//TableFileRead reads a table from the file name. The format is taken from the
//extension (.json or .toml), which can be followed by .gz or .zst for
//compressed files.
func TableFileRead(name string) (*Table, error) {
	format, compression := fileFormat(name)
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), "", name, []string{"os.Open", "TableFileRead"}, true}
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	switch compression {
	case "gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, Error{ErrCantRead + ": " + err.Error(), "", name, []string{"gzip.NewReader", "TableFileRead"}, true}
		}
		defer gz.Close()
		r = gz
	case "zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, Error{ErrCantRead + ": " + err.Error(), "", name, []string{"zstd.NewReader", "TableFileRead"}, true}
		}
		defer zr.Close()
		r = zr
	}
	T, err := TableRead(r, format)
	if err != nil {
		return nil, fileError(err, name, "TableFileRead")
	}
	return T, nil
}

//TableFileWrite writes T to the file name, choosing the format and compression
//from the extension, as in TableFileRead.
func TableFileWrite(name string, T *Table) error {
	format, compression := fileFormat(name)
	f, err := os.Create(name)
	if err != nil {
		return Error{UnableToOpen + ": " + err.Error(), "", name, []string{"os.Create", "TableFileWrite"}, true}
	}
	defer f.Close()
	var w io.WriteCloser
	switch compression {
	case "gz":
		w = gzip.NewWriter(f)
	case "zst":
		w, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return Error{ErrCantWrite + ": " + err.Error(), "", name, []string{"zstd.NewWriter", "TableFileWrite"}, true}
		}
	}
	if w == nil {
		err = TableWrite(f, T, format)
	} else {
		err = TableWrite(w, T, format)
		if cerr := w.Close(); err == nil && cerr != nil {
			err = Error{ErrCantWrite + ": " + cerr.Error(), "", name, []string{"Close", "TableFileWrite"}, true}
		}
	}
	if err != nil {
		return fileError(err, name, "TableFileWrite")
	}
	return f.Close()
}

//fileError attaches the file name to err, if err is an Error, and decorates it.
func fileError(err error, name, caller string) error {
	if e, ok := err.(Error); ok {
		e.filename = name
		err = e
	}
	return errDecorate(err, caller)
}
