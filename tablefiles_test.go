/*
 * tablefiles_test.go, part of openmx.
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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sameTable(Te *testing.T, a, b *Table) {
	Te.Helper()
	if a.Len() != b.Len() {
		Te.Fatalf("tables have %d and %d elements", a.Len(), b.Len())
	}
	for _, s := range a.Symbols() {
		x, _ := a.Basis(s)
		y, err := b.Basis(s)
		if err != nil {
			Te.Errorf("%s lost: %v", s, err)
			continue
		}
		if x.Symbol != y.Symbol || x.CutoffRadius != y.CutoffRadius || x.PseudoSuffix != y.PseudoSuffix || !equalInts(x.OrbitalsUsed, y.OrbitalsUsed) {
			Te.Errorf("%s changed: %+v vs %+v", s, x, y)
		}
	}
}

func TestTableRoundTrip(Te *testing.T) {
	for _, format := range []string{"json", "toml"} {
		var buf bytes.Buffer
		if err := TableWrite(&buf, DefaultTable(), format); err != nil {
			Te.Fatal(err)
		}
		T, err := TableRead(&buf, format)
		if err != nil {
			Te.Fatal(format, err)
		}
		sameTable(Te, DefaultTable(), T)
	}
}

func TestTableFiles(Te *testing.T) {
	dir := Te.TempDir()
	for _, name := range []string{"presets.json", "presets.toml", "presets.json.gz", "presets.TOML.zst"} {
		fname := filepath.Join(dir, name)
		if err := TableFileWrite(fname, DefaultTable()); err != nil {
			Te.Fatal(err)
		}
		T, err := TableFileRead(fname)
		if err != nil {
			Te.Fatal(err)
		}
		sameTable(Te, DefaultTable(), T)
	}
	//the compressed file should not be plain text
	raw, err := os.ReadFile(filepath.Join(dir, "presets.json.gz"))
	if err != nil {
		Te.Fatal(err)
	}
	if bytes.Contains(raw, []byte("cutoff_radius")) {
		Te.Error("presets.json.gz doesn't look compressed")
	}
}

func TestTableFileErrors(Te *testing.T) {
	dir := Te.TempDir()
	if err := TableFileWrite(filepath.Join(dir, "presets.yaml"), DefaultTable()); err == nil {
		Te.Error("unknown format accepted")
	}
	if _, err := TableFileRead(filepath.Join(dir, "nothere.json")); err == nil {
		Te.Error("missing file read without error")
	}
	dup := `
[[element]]
symbol = "H"
cutoff_radius = 6.0
orbitals_used = [2, 1]
pseudopotential_suffix = ""

[[element]]
symbol = "H"
cutoff_radius = 5.0
orbitals_used = [1, 1]
pseudopotential_suffix = ""
`
	if _, err := TableRead(strings.NewReader(dup), "toml"); err == nil {
		Te.Error("duplicated element read without error")
	}
	custom := `{"element": [{"symbol": "Fe", "cutoff_radius": 5.0, "orbitals_used": [2, 2, 1], "pseudopotential_suffix": "H"}]}`
	T, err := TableRead(strings.NewReader(custom), "json")
	if err != nil {
		Te.Fatal(err)
	}
	fe, err := T.Basis("Fe")
	if err != nil || fe.CutoffRadius != 5.0 || fe.PseudoSuffix != "H" {
		Te.Errorf("wrong custom entry %+v (%v)", fe, err)
	}
	if _, err := T.Basis("H"); !IsMissingConfig(err) {
		Te.Errorf("custom table should not fall back to the defaults, got %v", err)
	}
}

func TestTableFileErrorMessages(Te *testing.T) {
	dir := Te.TempDir()
	missing := filepath.Join(dir, "nothere.toml")
	_, err := TableFileRead(missing)
	if err == nil || !strings.Contains(err.Error(), "no such file") || !strings.Contains(err.Error(), missing) {
		Te.Errorf("error should say why %s can't be opened, got %v", missing, err)
	}
	if err := TableFileWrite(filepath.Join(dir, "nodir", "presets.toml"), DefaultTable()); err == nil || !strings.Contains(err.Error(), "no such file") {
		Te.Errorf("error should say why the file can't be created, got %v", err)
	}
	dup := "[[element]]\nsymbol = \"H\"\ncutoff_radius = 6.0\norbitals_used = [2, 1]\npseudopotential_suffix = \"\"\n"
	fname := filepath.Join(dir, "dup.toml")
	if err := os.WriteFile(fname, []byte(dup+"\n"+dup), 0644); err != nil {
		Te.Fatal(err)
	}
	_, err = TableFileRead(fname)
	if err == nil {
		Te.Fatal("duplicated element read without error")
	}
	msg := err.Error()
	if !strings.Contains(msg, fname) || !strings.Contains(msg, ErrDuplicateElement+" H") {
		Te.Errorf("error should name both the file and the element, got %q", msg)
	}
}
