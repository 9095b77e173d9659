/*
 * errors.go, part of openmx.
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
	"errors"
	"fmt"
)

//Error is the error type for the openmx package.
type Error struct {
	message  string
	symbol   string //the element involved, if any
	filename string //the file involved, if any
	deco     []string
	critical bool
}

func (err Error) Error() string {
	switch {
	case err.symbol != "" && err.filename != "":
		return fmt.Sprintf("openmx file %s error: %s %s", err.filename, err.message, err.symbol)
	case err.symbol != "":
		return fmt.Sprintf("%s %s", err.message, err.symbol)
	case err.filename != "":
		return fmt.Sprintf("openmx file %s error: %s", err.filename, err.message)
	}
	return err.message
}

//Decorate adds deco to the call trail of the error and returns the trail.
func (err Error) Decorate(deco string) []string {
	//Even thought this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Symbol returns the chemical symbol the error refers to, or an empty string.
func (err Error) Symbol() string { return err.symbol }

//FileName returns the file associated to the error, or an empty string.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

//Message returns the error message without the element or file.
func (err Error) Message() string { return err.message }

//errDecorate adds the caller's name to an Error. Other error types are returned unchanged.
func errDecorate(err error, caller string) error {
	var e Error
	if errors.As(err, &e) {
		e.deco = e.Decorate(caller)
		return e
	}
	return err
}

//IsMissingConfig returns true if err reports an element absent from a basis table.
func IsMissingConfig(err error) bool {
	var e Error
	return errors.As(err, &e) && e.message == ErrMissingConfig
}

const (
	ErrMissingConfig    = "missing configuration for element"
	ErrDuplicateElement = "duplicated entry for element"
	ErrUnknownFormat    = "unknown table format"
	ErrCantRead         = "can't read table"
	ErrCantWrite        = "can't write table"
	UnableToOpen        = "Unable to open file"
)
