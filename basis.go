/*
 * basis.go, part of openmx.
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
	"sort"
	"strconv"
	"strings"
)

//ElementBasisSpec holds the numerical-orbital settings OpenMX uses for one element.
//OrbitalsUsed gives the number of radial functions for the s, p, d and f
//channels, in that order. PseudoSuffix selects an alternative
//pseudopotential/PAO set (for instance "S", soft) and is usually empty.
type ElementBasisSpec struct {
	Symbol       string  `json:"symbol" toml:"symbol"`
	CutoffRadius float64 `json:"cutoff_radius" toml:"cutoff_radius"` //bohr
	OrbitalsUsed []int   `json:"orbitals_used" toml:"orbitals_used"`
	PseudoSuffix string  `json:"pseudopotential_suffix" toml:"pseudopotential_suffix"`
}

//Copy returns a deep copy of the receiver.
func (E ElementBasisSpec) Copy() ElementBasisSpec {
	ret := E
	if E.OrbitalsUsed != nil {
		ret.OrbitalsUsed = make([]int, len(E.OrbitalsUsed))
		copy(ret.OrbitalsUsed, E.OrbitalsUsed)
	}
	return ret
}

var channels = []string{"s", "p", "d", "f"}

//OrbitalString returns the orbital label used in OpenMX PAO names, i.e. "s3p2d1"
//for OrbitalsUsed = [3 2 1]. Counts beyond the f channel are ignored.
func (E ElementBasisSpec) OrbitalString() string {
	var b strings.Builder
	for i, v := range E.OrbitalsUsed {
		if i >= len(channels) {
			break
		}
		b.WriteString(channels[i])
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

//Table is a read-only map from chemical symbol to basis settings.
//A Table is never modified after creation, so it can be shared among goroutines.
type Table struct {
	specs map[string]ElementBasisSpec
}

//NewTable builds a Table from the given entries. It returns an error if a symbol
//appears more than once. No other check is performed on the values.
func NewTable(specs ...ElementBasisSpec) (*Table, error) {
	T := &Table{specs: make(map[string]ElementBasisSpec, len(specs))}
	for _, v := range specs {
		if _, ok := T.specs[v.Symbol]; ok {
			return nil, Error{ErrDuplicateElement, v.Symbol, "", []string{"NewTable"}, true}
		}
		T.specs[v.Symbol] = v.Copy()
	}
	return T, nil
}

//Basis returns the settings for the element with the given symbol.
//If the element is not in the table, the error returned satisfies IsMissingConfig.
func (T *Table) Basis(symbol string) (ElementBasisSpec, error) {
	if T == nil {
		return ElementBasisSpec{}, Error{ErrMissingConfig, symbol, "", []string{"Basis"}, true}
	}
	s, ok := T.specs[symbol]
	if !ok {
		return ElementBasisSpec{}, Error{ErrMissingConfig, symbol, "", []string{"Basis"}, true}
	}
	return s.Copy(), nil
}

//Has returns true if the table contains the symbol.
func (T *Table) Has(symbol string) bool {
	if T == nil {
		return false
	}
	_, ok := T.specs[symbol]
	return ok
}

//Len returns the number of elements in the table.
func (T *Table) Len() int {
	if T == nil {
		return 0
	}
	return len(T.specs)
}

//Symbols returns the symbols in the table, ordered by atomic number.
//Symbols that are not chemical elements go last, in alphabetical order.
func (T *Table) Symbols() []string {
	if T == nil {
		return nil
	}
	ret := make([]string, 0, len(T.specs))
	for k := range T.specs {
		ret = append(ret, k)
	}
	sort.Slice(ret, func(i, j int) bool {
		zi, oki := AtomicNumber(ret[i])
		zj, okj := AtomicNumber(ret[j])
		switch {
		case oki && okj:
			return zi < zj
		case oki != okj:
			return oki
		default:
			return ret[i] < ret[j]
		}
	})
	return ret
}

//Specs returns copies of all the entries, in the order given by Symbols.
func (T *Table) Specs() []ElementBasisSpec {
	syms := T.Symbols()
	ret := make([]ElementBasisSpec, 0, len(syms))
	for _, s := range syms {
		ret = append(ret, T.specs[s].Copy())
	}
	return ret
}

//DefaultTable returns the table of standard OpenMX PAO settings.
func DefaultTable() *Table {
	return defaultTable
}

//Basis returns the default settings for the element with the given symbol.
//It is a shortcut for DefaultTable().Basis(symbol).
func Basis(symbol string) (ElementBasisSpec, error) {
	s, err := defaultTable.Basis(symbol)
	if err != nil {
		err = errDecorate(err, "openmx.Basis")
	}
	return s, err
}

var defaultTable *Table

func init() {
	var err error
	defaultTable, err = NewTable(defaultSpecs...)
	if err != nil {
		panic(err.Error())
	}
}

//Standard PAO choices for OpenMX 3.9 (openmx-square.org/openmx_man3.9, node27).
//Older radii and orbital counts from the 2013 VPS/PAO database were kept where
//the manual didn't change them. These are reference values, don't "fix" them.
var defaultSpecs = []ElementBasisSpec{
	{"H", 6.0, []int{2, 1}, ""},
	{"He", 8.0, []int{2, 1}, ""},
	{"Li", 8.0, []int{3, 2}, ""},
	{"Be", 7.0, []int{2, 2}, ""},
	{"B", 7.0, []int{2, 2, 1}, ""},
	{"C", 6.0, []int{2, 2, 1}, ""},
	{"N", 6.0, []int{2, 2, 1}, ""},
	{"O", 6.0, []int{2, 2, 1}, ""},
	{"F", 6.0, []int{2, 2, 1}, ""},
	{"Ne", 9.0, []int{2, 2, 1}, ""},
	{"Na", 9.0, []int{3, 2, 1}, ""},
	{"Mg", 9.0, []int{3, 2, 1}, ""},
	{"Al", 7.0, []int{2, 2, 1}, ""},
	{"Si", 7.0, []int{2, 2, 1}, ""},
	{"P", 7.0, []int{2, 2, 1, 1}, ""},
	{"S", 7.0, []int{2, 2, 1, 1}, ""},
	{"Cl", 7.0, []int{2, 2, 1, 1}, ""},
	{"Ar", 9.0, []int{2, 2, 1, 1}, ""},
	{"K", 10.0, []int{3, 2, 1}, ""},
	{"Ca", 9.0, []int{3, 2, 1}, ""},
	{"Sc", 9.0, []int{3, 2, 1}, ""},
	{"Ti", 7.0, []int{3, 2, 1}, ""},
	{"V", 6.0, []int{3, 2, 1}, ""},
	{"Cr", 6.0, []int{3, 2, 1}, ""},
	{"Mn", 6.0, []int{3, 2, 1}, ""},
	{"Fe", 6.0, []int{3, 2, 1}, "S"},
	{"Co", 6.0, []int{3, 2, 1}, "S"},
	{"Ni", 6.0, []int{3, 2, 1}, "S"},
	{"Cu", 6.0, []int{3, 2, 1}, "S"},
	{"Zn", 6.0, []int{3, 2, 1}, "S"},
	{"Ga", 7.0, []int{3, 2, 2}, ""},
	{"Ge", 7.0, []int{3, 2, 2}, ""},
	{"As", 7.0, []int{3, 2, 2}, ""},
	{"Se", 7.0, []int{3, 2, 2}, ""},
	{"Br", 7.0, []int{3, 2, 2}, ""},
	{"Kr", 10.0, []int{3, 2, 2}, ""},
	{"Rb", 11.0, []int{3, 2, 2}, ""},
	{"Sr", 10.0, []int{3, 2, 2}, ""},
	{"Y", 10.0, []int{3, 2, 2}, ""},
	{"Zr", 7.0, []int{3, 2, 2}, ""},
	{"Nb", 7.0, []int{3, 2, 2}, ""},
	{"Mo", 7.0, []int{3, 2, 2}, ""},
	{"Tc", 7.0, []int{3, 2, 2}, ""},
	{"Ru", 7.0, []int{3, 2, 2}, ""},
	{"Rh", 7.0, []int{3, 2, 2}, ""},
	{"Pd", 7.0, []int{3, 2, 2}, ""},
	{"Ag", 7.0, []int{3, 2, 2}, ""},
	{"Cd", 7.0, []int{3, 2, 2}, ""},
	{"In", 7.0, []int{3, 2, 2}, ""},
	{"Sn", 7.0, []int{3, 2, 2}, ""},
	{"Sb", 7.0, []int{3, 2, 2}, ""},
	{"Te", 7.0, []int{3, 2, 2, 1}, ""},
	{"I", 7.0, []int{3, 2, 2, 1}, ""},
	{"Xe", 11.0, []int{3, 2, 2}, ""},
	{"Cs", 12.0, []int{3, 2, 2}, ""},
	{"Ba", 10.0, []int{3, 2, 2}, ""},
	{"La", 8.0, []int{3, 2, 2, 1}, ""},
	{"Ce", 8.0, []int{3, 2, 2, 1}, ""},
	{"Pr", 8.0, []int{3, 2, 2, 1}, ""},
	{"Nd", 8.0, []int{3, 2, 2, 1}, ""},
	{"Pm", 8.0, []int{3, 2, 2, 1}, ""},
	{"Sm", 8.0, []int{3, 2, 2, 1}, ""},
	{"Dy", 8.0, []int{3, 2, 2, 1}, ""},
	{"Ho", 8.0, []int{3, 2, 2, 1}, ""},
	{"Lu", 8.0, []int{3, 2, 2, 1}, ""},
	{"Hf", 9.0, []int{3, 2, 2, 1}, ""},
	{"Ta", 7.0, []int{3, 2, 2, 1}, ""},
	{"W", 7.0, []int{3, 2, 2, 1}, ""},
	{"Re", 7.0, []int{3, 2, 2, 1}, ""},
	{"Os", 7.0, []int{3, 2, 2, 1}, ""},
	{"Ir", 7.0, []int{3, 2, 2, 1}, ""},
	{"Pt", 7.0, []int{3, 2, 2, 1}, ""},
	{"Au", 7.0, []int{3, 2, 2, 1}, ""},
	{"Hg", 8.0, []int{3, 2, 2, 1}, ""},
	{"Tl", 8.0, []int{3, 2, 2, 1}, ""},
	{"Pb", 8.0, []int{3, 2, 2, 1}, ""},
	{"Bi", 8.0, []int{3, 2, 2, 1}, ""},
}
