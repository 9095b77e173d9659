/*
 * openmx.go, part of openmx.
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
//In order to use this part of the library you need the OpenMX program, obtained from openmx-square.org.
//Please cite the OpenMX references if you use the program.

package qm

import (
	"bufio"
	"fmt"
	"log"
	"math"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/rmera/openmx"
)

//Note that the default settings vary with each program, and even
//for a given program they are NOT considered part of the API, so they can always change.
type OpenMXHandle struct {
	defxc     string
	command   string
	inputname string
	nCPU      int
	vacuum    float64 //padding, in A, for the box built when no cell is given
}

func NewOpenMXHandle() *OpenMXHandle {
	run := new(OpenMXHandle)
	run.SetDefaults()
	return run
}

//OpenMXHandle methods

//Sets the number of threads to be used
func (O *OpenMXHandle) SetnCPU(cpu int) {
	O.nCPU = cpu
}

func (O *OpenMXHandle) SetName(name string) {
	O.inputname = name
}

func (O *OpenMXHandle) SetCommand(name string) {
	O.command = name
}

func (O *OpenMXHandle) Command() string {
	return O.command
}

/*Sets defaults for OpenMX calculation. Default is a single-point at
GGA-PBE, using all the available CPUs. The OpenMX command is set to
$OPENMX_PATH/openmx, at least in unix.*/
func (O *OpenMXHandle) SetDefaults() {
	O.defxc = "GGA-PBE"
	O.command = os.ExpandEnv("${OPENMX_PATH}/openmx")
	if O.command == "/openmx" { //if OPENMX_PATH was not defined
		O.command = "openmx"
	}
	O.nCPU = runtime.NumCPU()
	O.vacuum = 10
}

//PseudoFamily returns the tag of the VPS files that match the functional,
//PBE19 for GGA functionals and CA19 otherwise.
func PseudoFamily(xc string) string {
	if strings.HasPrefix(strings.ToUpper(xc), "GGA") {
		return "PBE19"
	}
	return "CA19"
}

//SpeciesLine returns the Definition.of.Atomic.Species line for the element
//described by spec, using the VPS family given (for instance PBE19).
func SpeciesLine(spec openmx.ElementBasisSpec, family string) string {
	pao := fmt.Sprintf("%s%.1f%s-%s", spec.Symbol, spec.CutoffRadius, spec.PseudoSuffix, spec.OrbitalString())
	vps := fmt.Sprintf("%s_%s%s", spec.Symbol, family, spec.PseudoSuffix)
	return fmt.Sprintf("  %-3s %-16s %s\n", spec.Symbol, pao, vps)
}

//KPathBlock returns the Band.Nkpath keyword and the Band.kpath block for
//the segments given.
func KPathBlock(segs []openmx.KPathSegment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Band.Nkpath  %d\n", len(segs))
	b.WriteString("<Band.kpath\n")
	for _, s := range segs {
		fmt.Fprintf(&b, "  %3d  %8.5f %8.5f %8.5f  %8.5f %8.5f %8.5f  %s %s\n", s.Points,
			s.Start.X, s.Start.Y, s.Start.Z, s.End.X, s.End.Y, s.End.Z, s.Labels[0], s.Labels[1])
	}
	b.WriteString("Band.kpath>\n")
	return b.String()
}

//BuildInput builds an input for OpenMX based int the data in atoms, coords and Q.
//returns only error. The basis set for each element comes from Q.Basis
//(or the default presets). If an element is missing there, the error
//returned satisfies openmx.IsMissingConfig.
func (O *OpenMXHandle) BuildInput(coords *mat.Dense, atoms Atomer, Q *Calc) error {
	if O.inputname == "" {
		O.inputname = "openmx"
	}
	if atoms == nil || coords == nil {
		return newError(ErrMissingCharges, O.inputname, "", nil, "BuildInput")
	}
	if r, c := coords.Dims(); r != atoms.Len() || c != 3 {
		return newError(ErrMissingCharges, O.inputname, fmt.Sprintf("%d atoms but %dx%d coordinates", atoms.Len(), r, c), nil, "BuildInput")
	}
	if Q == nil {
		Q = new(Calc)
	}
	xc := Q.XC
	if xc == "" {
		fmt.Fprintf(os.Stderr, "no functional assigned for OpenMX calculation, will use the default %s\n", O.defxc)
		xc = O.defxc
	}
	table := Q.Basis
	if table == nil {
		table = openmx.DefaultTable()
	}
	family := PseudoFamily(xc)
	//species, in order of appearance
	species := make([]string, 0, 5)
	var speclines strings.Builder
	for i := 0; i < atoms.Len(); i++ {
		sym := atoms.Symbol(i)
		if isInString(species, sym) {
			continue
		}
		spec, err := table.Basis(sym)
		if err != nil {
			return newError(ErrMissingBasis, O.inputname, sym, err, "BuildInput")
		}
		if _, ok := Q.Valence[sym]; !ok {
			return newError(ErrMissingValence, O.inputname, sym, nil, "BuildInput")
		}
		species = append(species, sym)
		speclines.WriteString(SpeciesLine(spec, family))
	}
	cell := Q.Cell
	if cell == nil {
		cell = O.box(coords)
		log.Printf("No unit cell given for %s, using an orthorhombic box with %.1f A of vacuum", O.inputname, O.vacuum)
	} else if r, c := cell.Dims(); r != 3 || c != 3 {
		return newError(ErrBadCell, O.inputname, fmt.Sprintf("got %dx%d", r, c), nil, "BuildInput")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "System.CurrrentDirectory  ./\n")
	fmt.Fprintf(&b, "System.Name  %s\n", O.inputname)
	if Q.DataPath != "" {
		fmt.Fprintf(&b, "DATA.PATH  %s\n", Q.DataPath)
	}
	fmt.Fprintf(&b, "level.of.stdout  1\nlevel.of.fileout  1\n\n")
	fmt.Fprintf(&b, "Species.Number  %d\n", len(species))
	fmt.Fprintf(&b, "<Definition.of.Atomic.Species\n%sDefinition.of.Atomic.Species>\n\n", speclines.String())
	fmt.Fprintf(&b, "Atoms.Number  %d\n", atoms.Len())
	fmt.Fprintf(&b, "Atoms.SpeciesAndCoordinates.Unit  Ang\n<Atoms.SpeciesAndCoordinates\n")
	for i := 0; i < atoms.Len(); i++ {
		sym := atoms.Symbol(i)
		half := Q.Valence[sym] / 2
		fmt.Fprintf(&b, "  %4d %-3s %12.6f %12.6f %12.6f  %6.2f %6.2f\n", i+1, sym, coords.At(i, 0), coords.At(i, 1), coords.At(i, 2), half, half)
	}
	fmt.Fprintf(&b, "Atoms.SpeciesAndCoordinates>\n")
	fmt.Fprintf(&b, "Atoms.UnitVectors.Unit  Ang\n<Atoms.UnitVectors\n")
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&b, "  %12.6f %12.6f %12.6f\n", cell.At(i, 0), cell.At(i, 1), cell.At(i, 2))
	}
	fmt.Fprintf(&b, "Atoms.UnitVectors>\n\n")

	spin := "off"
	if Q.Spin {
		spin = "on"
	}
	ecut := Q.EnergyCutoff
	if ecut <= 0 {
		ecut = 150
	}
	maxiter := Q.MaxIter
	if maxiter <= 0 {
		maxiter = 100
	}
	kgrid := Q.KGrid
	for i, v := range kgrid {
		if v <= 0 {
			kgrid[i] = 1
		}
	}
	fmt.Fprintf(&b, "scf.XcType  %s\n", xc)
	fmt.Fprintf(&b, "scf.SpinPolarization  %s\n", spin)
	fmt.Fprintf(&b, "scf.EigenvalueSolver  band\n")
	fmt.Fprintf(&b, "scf.Kgrid  %d %d %d\n", kgrid[0], kgrid[1], kgrid[2])
	fmt.Fprintf(&b, "scf.energycutoff  %.1f\n", ecut)
	fmt.Fprintf(&b, "scf.maxIter  %d\n", maxiter)
	fmt.Fprintf(&b, "scf.Mixing.Type  rmm-diisk\n")
	fmt.Fprintf(&b, "scf.criterion  1.0e-6\n\n")
	if Q.Optimize {
		fmt.Fprintf(&b, "MD.Type  Opt\nMD.maxIter  100\n\n")
	} else {
		fmt.Fprintf(&b, "MD.Type  nomd\n\n")
	}
	if Q.Band {
		path := Q.KPath
		if path == nil {
			path = openmx.DefaultKPath()
		}
		fmt.Fprintf(&b, "Band.dispersion  on\n")
		b.WriteString(KPathBlock(path))
	}
	if Q.Others != "" {
		fmt.Fprintf(&b, "\n%s\n", strings.TrimRight(Q.Others, "\n"))
	}
	if err := os.WriteFile(O.inputname+".dat", []byte(b.String()), 0644); err != nil {
		return newError(ErrCantInput, O.inputname, err.Error(), err, "os.WriteFile", "BuildInput")
	}
	return nil
}

//box returns an orthorhombic cell that contains coords plus O.vacuum in each direction.
func (O *OpenMXHandle) box(coords *mat.Dense) *mat.Dense {
	cell := mat.NewDense(3, 3, nil)
	r, _ := coords.Dims()
	for j := 0; j < 3; j++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := 0; i < r; i++ {
			lo = math.Min(lo, coords.At(i, j))
			hi = math.Max(hi, coords.At(i, j))
		}
		cell.Set(j, j, hi-lo+2*O.vacuum)
	}
	return cell
}

//Run runs the command given by the string O.command
//it waits or not for the result depending on wait.
//Not waiting for results works
//only for unix-compatible systems, as it uses sh and nohup.
func (O *OpenMXHandle) Run(wait bool) (err error) {
	cpus := strconv.Itoa(O.nCPU)
	if wait {
		out, err := os.Create(O.inputname + ".std")
		if err != nil {
			return newError(ErrNotRunning, O.inputname, err.Error(), err, "os.Create", "Run")
		}
		defer out.Close()
		log.Printf("%s %s.dat -nt %s", O.command, O.inputname, cpus)
		command := exec.Command(O.command, O.inputname+".dat", "-nt", cpus)
		command.Stdout = out
		command.Stderr = out
		if err = command.Run(); err != nil {
			return newError(ErrNotRunning, O.inputname, err.Error(), err, "exec.Run", "Run")
		}
		return nil
	}
	com := fmt.Sprintf("nohup %s %s -nt %s > %s 2>&1 &", O.command, shellQuote(O.inputname+".dat"), cpus, shellQuote(O.inputname+".std"))
	command := exec.Command("sh", "-c", com)
	if err = command.Start(); err != nil {
		return newError(ErrNotRunning, O.inputname, err.Error(), err, "exec.Start", "Run")
	}
	//sh exits right away, the calculation keeps going under nohup.
	go command.Wait()
	return nil
}

//shellQuote quotes s for sh, so names with spaces or metacharacters stay one word.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

//normalTermination checks that an OpenMX calculation has terminated normally
func (O *OpenMXHandle) normalTermination() bool {
	line, err := lastLineWith("The calculation was normally finished", O.inputname+".out")
	return err == nil && line != ""
}

//maxLine is the longest line the output readers accept.
const maxLine = 16 * 1024 * 1024

//lastLineWith returns the last line in the file that contains str, or an empty string
//if no line does.
func lastLineWith(str, filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()
	last := ""
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	for scanner.Scan() {
		if line := scanner.Text(); strings.Contains(line, str) {
			last = line
		}
	}
	return last, scanner.Err()
}

//Energy gets the total energy of a previous OpenMX calculation, in kcal/mol.
//Returns error if problem, and also if the energy returned that is product of an
//abnormally-terminated OpenMX calculation. (in this case error is "Probable problem
//in calculation")
func (O *OpenMXHandle) Energy() (float64, error) {
	outname := O.inputname + ".out"
	energyline, err := lastLineWith("Utot.", outname)
	if err != nil {
		return 0, newError(ErrNoEnergy, O.inputname, err.Error(), err, "lastLineWith", "Energy")
	}
	if energyline == "" {
		return 0, newError(ErrNoEnergy, O.inputname, "no Utot. line", nil, "lastLineWith", "Energy")
	}
	split := strings.Fields(energyline)
	if len(split) < 2 {
		return 0, newError(ErrNoEnergy, O.inputname, energyline, nil, "Energy")
	}
	energy, err := strconv.ParseFloat(split[1], 64)
	if err != nil {
		return 0, newError(ErrNoEnergy, O.inputname, err.Error(), err, "strconv.ParseFloat", "Energy")
	}
	energy = energy * H2Kcal
	if !O.normalTermination() {
		return energy, newError(ErrProbableProblem, O.inputname, "", nil, "Energy")
	}
	return energy, nil
}

//OptimizedGeometry reads the final geometry from the xyz file OpenMX writes
//at the end of a calculation.
func (O *OpenMXHandle) OptimizedGeometry(atoms Atomer) (*mat.Dense, error) {
	if !O.normalTermination() {
		return nil, newError(ErrNoGeometry, O.inputname, "Calculation didn't end normally", nil, "OptimizedGeometry")
	}
	f, err := os.Open(O.inputname + ".xyz")
	if err != nil {
		return nil, newError(ErrNoGeometry, O.inputname, err.Error(), err, "os.Open", "OptimizedGeometry")
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	if !scanner.Scan() {
		return nil, newError(ErrNoGeometry, O.inputname, "empty xyz file", scanner.Err(), "OptimizedGeometry")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err == nil && natoms <= 0 {
		err = fmt.Errorf("%d atoms in xyz file", natoms)
	}
	if err != nil {
		return nil, newError(ErrNoGeometry, O.inputname, err.Error(), err, "strconv.Atoi", "OptimizedGeometry")
	}
	if atoms != nil && atoms.Len() != natoms {
		return nil, newError(ErrNoGeometry, O.inputname, fmt.Sprintf("%d atoms in file, %d expected", natoms, atoms.Len()), nil, "OptimizedGeometry")
	}
	scanner.Scan() //comment line
	coords := mat.NewDense(natoms, 3, nil)
	for i := 0; i < natoms; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, newError(ErrNoGeometry, O.inputname, err.Error(), err, "bufio.Scanner", "OptimizedGeometry")
			}
			return nil, newError(ErrNoGeometry, O.inputname, "truncated xyz file", nil, "OptimizedGeometry")
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			return nil, newError(ErrNoGeometry, O.inputname, "malformed line: "+scanner.Text(), nil, "OptimizedGeometry")
		}
		for j := 0; j < 3; j++ {
			v, err := strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, newError(ErrNoGeometry, O.inputname, err.Error(), err, "strconv.ParseFloat", "OptimizedGeometry")
			}
			coords.Set(i, j, v)
		}
	}
	return coords, nil
}

//isInString returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
