/*
 * basis_test.go, part of openmx.
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
	"strings"
	"testing"
)

func TestDefaultTable(Te *testing.T) {
	T := DefaultTable()
	if T.Len() != 77 {
		Te.Errorf("expected 77 elements in the default table, got %d", T.Len())
	}
	soft := map[string]bool{"Fe": true, "Co": true, "Ni": true, "Cu": true, "Zn": true}
	seen := make(map[string]bool)
	for _, sym := range T.Symbols() {
		if seen[sym] {
			Te.Errorf("symbol %s listed twice", sym)
		}
		seen[sym] = true
		if !IsElement(sym) {
			Te.Errorf("%s is not a chemical element", sym)
		}
		s, err := T.Basis(sym)
		if err != nil {
			Te.Fatal(err)
		}
		if s.Symbol != sym {
			Te.Errorf("entry %s has symbol %s", sym, s.Symbol)
		}
		if s.CutoffRadius <= 0 {
			Te.Errorf("%s: non-positive cutoff radius %f", sym, s.CutoffRadius)
		}
		if l := len(s.OrbitalsUsed); l < 2 || l > 4 {
			Te.Errorf("%s: %d orbital channels", sym, l)
		}
		for _, v := range s.OrbitalsUsed {
			if v < 0 {
				Te.Errorf("%s: negative orbital count %v", sym, s.OrbitalsUsed)
			}
		}
		if soft[sym] {
			if s.PseudoSuffix != "S" {
				Te.Errorf("%s: expected suffix S, got %q", sym, s.PseudoSuffix)
			}
		} else if s.PseudoSuffix != "" {
			Te.Errorf("%s: unexpected suffix %q", sym, s.PseudoSuffix)
		}
	}
}

func TestSymbolsOrder(Te *testing.T) {
	syms := DefaultTable().Symbols()
	if syms[0] != "H" || syms[len(syms)-1] != "Bi" {
		Te.Errorf("symbols not sorted by atomic number: first %s, last %s", syms[0], syms[len(syms)-1])
	}
	prev := 0
	for _, s := range syms {
		z, _ := AtomicNumber(s)
		if z <= prev {
			Te.Errorf("%s (Z=%d) after Z=%d", s, z, prev)
		}
		prev = z
	}
	T, err := NewTable(ElementBasisSpec{Symbol: "Xb", CutoffRadius: 1, OrbitalsUsed: []int{1, 1}},
		ElementBasisSpec{Symbol: "O", CutoffRadius: 6, OrbitalsUsed: []int{2, 2, 1}},
		ElementBasisSpec{Symbol: "Xa", CutoffRadius: 1, OrbitalsUsed: []int{1, 1}})
	if err != nil {
		Te.Fatal(err)
	}
	if got := strings.Join(T.Symbols(), " "); got != "O Xa Xb" {
		Te.Errorf("unexpected order %q", got)
	}
}

func TestBasisLookup(Te *testing.T) {
	fe, err := Basis("Fe")
	if err != nil {
		Te.Fatal(err)
	}
	if fe.CutoffRadius != 6.0 || !equalInts(fe.OrbitalsUsed, []int{3, 2, 1}) || fe.PseudoSuffix != "S" {
		Te.Errorf("wrong Fe settings: %+v", fe)
	}
	h, err := Basis("H")
	if err != nil {
		Te.Fatal(err)
	}
	if h.CutoffRadius != 6.0 || !equalInts(h.OrbitalsUsed, []int{2, 1}) || h.PseudoSuffix != "" {
		Te.Errorf("wrong H settings: %+v", h)
	}
	te, _ := Basis("Te")
	if te.OrbitalString() != "s3p2d2f1" {
		Te.Errorf("wrong orbital string for Te: %s", te.OrbitalString())
	}
	if fe.OrbitalString() != "s3p2d1" {
		Te.Errorf("wrong orbital string for Fe: %s", fe.OrbitalString())
	}
}

func TestMissingElement(Te *testing.T) {
	s, err := Basis("Xx")
	if err == nil {
		Te.Fatalf("lookup of Xx returned %+v and no error", s)
	}
	if !IsMissingConfig(err) {
		Te.Errorf("error %v is not a missing-configuration error", err)
	}
	if !strings.Contains(err.Error(), "Xx") {
		Te.Errorf("error %q doesn't name the element", err.Error())
	}
	if e, ok := err.(Error); !ok || e.Symbol() != "Xx" || !e.Critical() {
		Te.Errorf("unexpected error value %#v", err)
	}
	//Eu is an element, but it has no standard preset.
	if _, err := Basis("Eu"); !IsMissingConfig(err) {
		Te.Errorf("expected missing configuration for Eu, got %v", err)
	}
	var T *Table
	if _, err := T.Basis("H"); !IsMissingConfig(err) {
		Te.Errorf("nil table: expected missing configuration, got %v", err)
	}
}

func TestTableIsReadOnly(Te *testing.T) {
	fe, _ := Basis("Fe")
	fe.OrbitalsUsed[0] = 99
	fe.CutoffRadius = 1
	again, _ := Basis("Fe")
	if again.OrbitalsUsed[0] != 3 || again.CutoffRadius != 6.0 {
		Te.Errorf("default table modified through a returned value: %+v", again)
	}
	specs := DefaultTable().Specs()
	specs[0].OrbitalsUsed[0] = 99
	if h, _ := Basis("H"); h.OrbitalsUsed[0] != 2 {
		Te.Errorf("default table modified through Specs: %+v", h)
	}
	orb := []int{2, 1}
	T, err := NewTable(ElementBasisSpec{"H", 5.0, orb, ""})
	if err != nil {
		Te.Fatal(err)
	}
	orb[0] = 7
	if h, _ := T.Basis("H"); h.OrbitalsUsed[0] != 2 {
		Te.Errorf("table modified through the slice given to NewTable: %+v", h)
	}
}

func TestDuplicateElement(Te *testing.T) {
	_, err := NewTable(ElementBasisSpec{"H", 6.0, []int{2, 1}, ""}, ElementBasisSpec{"H", 7.0, []int{2, 1}, ""})
	if err == nil {
		Te.Fatal("duplicated symbol accepted")
	}
	if IsMissingConfig(err) {
		Te.Errorf("duplicated symbol reported as missing: %v", err)
	}
}

func TestConcurrentLookup(Te *testing.T) {
	done := make(chan error)
	syms := DefaultTable().Symbols()
	for i := 0; i < 8; i++ {
		go func() {
			var err error
			for _, s := range syms {
				if _, e := Basis(s); e != nil {
					err = e
				}
			}
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			Te.Error(err)
		}
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
