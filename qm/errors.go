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

package qm

import (
	"errors"
	"fmt"
)

//Error is the error type for the qm package.
type Error struct {
	message    string
	code       string //the program that gave the problem
	inputname  string //the input file that has problems, or empty string if none.
	additional string
	deco       []string
	critical   bool
	cause      error
}

//newError returns a critical OpenMX error. deco is the call trail, innermost first.
func newError(message, inputname, additional string, cause error, deco ...string) Error {
	return Error{message, OpenMX, inputname, additional, deco, true, cause}
}

func (err Error) Error() string {
	if err.additional == "" {
		return fmt.Sprintf("%s (%s) error: %s", err.code, err.inputname, err.message)
	}
	return fmt.Sprintf("%s (%s) error: %s: %s", err.code, err.inputname, err.message, err.additional)
}

//Code returns the name of the program that ran/was meant to run the
//calculation that caused the error.
func (err Error) Code() string { return err.code }

//InputName returns the name of the input file which processing caused the error
func (err Error) InputName() string { return err.inputname }

//Decorate adds deco to the call trail of the error and returns the trail.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

//Unwrap returns the error that caused err, if any. For a missing basis set
//it is an openmx.Error, so openmx.IsMissingConfig works on err.
func (err Error) Unwrap() error { return err.cause }

//IsProbableProblem returns true if err reports a value read from a calculation
//that didn't terminate normally.
func IsProbableProblem(err error) bool {
	var e Error
	return errors.As(err, &e) && e.message == ErrProbableProblem
}

const (
	ErrMissingCharges  = "Missing charges or coordinates"
	ErrMissingBasis    = "No basis set for element"
	ErrMissingValence  = "No valence electrons given for element"
	ErrBadCell         = "Unit cell must be a 3x3 matrix"
	ErrCantInput       = "Can't build input"
	ErrNotRunning      = "Program can't run"
	ErrNoEnergy        = "Can't obtain energy"
	ErrNoGeometry      = "Can't obtain geometry"
	ErrProbableProblem = "Probable problem in calculation"
)

const OpenMX = "OpenMX"
