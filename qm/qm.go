/*
 * qm.go, part of openmx.
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
	"gonum.org/v1/gonum/mat"

	"github.com/rmera/openmx"
)

//Handle allows to set OpenMX-like calculations.
type Handle interface {

	//Sets the name for the job, used for input
	//and output files. The extentions will depend on the program.
	SetName(name string)

	//BuildInput builds an input for the QM program based int the data in
	//atoms, coords and Q. returns only error.
	BuildInput(coords *mat.Dense, atoms Atomer, Q *Calc) error

	//Run runs the QM program for a calculation previously set.
	//it waits or not for the result depending of the value of
	//wait.
	Run(wait bool) (err error)

	//Energy gets the last energy for a  calculation by parsing the
	//QM program's output file. Return error if fail. Also returns
	//Error ("Probable problem in calculation")
	//if there is a energy but the calculation didnt end properly.
	Energy() (float64, error)

	//OptimizedGeometry reads the optimized geometry from a calculation
	//output. Returns error if fail.
	OptimizedGeometry(atoms Atomer) (*mat.Dense, error)
}

//Atomer is the minimal information about a system needed to build an input.
type Atomer interface {
	Len() int
	Symbol(i int) string
}

//Symbols is a list of chemical symbols. It implements Atomer.
type Symbols []string

func (S Symbols) Len() int { return len(S) }

func (S Symbols) Symbol(i int) string { return S[i] }

//Calc contains the settings for a calculation. The zero value is usable,
//defaults are filled in by the handle.
type Calc struct {
	XC           string  //exchange-correlation functional, in OpenMX terms (GGA-PBE, LDA, ...)
	Spin         bool    //spin-polarized (collinear) calculation
	EnergyCutoff float64 //Ry
	MaxIter      int     //max SCF iterations
	KGrid        [3]int
	Cell         *mat.Dense //3x3, unit vectors as rows, in A. If nil, a box is built around the system
	Optimize     bool
	Band         bool
	KPath        []openmx.KPathSegment //If nil, openmx.DefaultKPath() is used
	Basis        *openmx.Table         //If nil, openmx.DefaultTable() is used
	Valence      map[string]float64    //valence electrons per element, split evenly between up and down spins
	DataPath     string                //location of the VPS and PAO files
	Others       string                //lines added verbatim to the input
}

//SetDefaults sets values commonly used in solid-state calculations.
func (Q *Calc) SetDefaults() {
	Q.XC = "GGA-PBE"
	Q.EnergyCutoff = 150
	Q.MaxIter = 100
	Q.KGrid = [3]int{4, 4, 4}
}

//Hartree to kcal/mol
const H2Kcal = 627.509
