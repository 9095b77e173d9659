/*
 * doc.go, part of openmx.
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

/*Package openmx provides the standard basis-set presets needed to prepare
OpenMX calculations.

	**Capabilities**

    A table with the cutoff radius, the number of s, p, d and f
	pseudo-atomic orbitals and the pseudopotential variant used for each
	element from H to Bi (with a few lanthanides missing).

    Lookup of elements by chemical symbol. Elements absent from a table
	give an error that can be checked with IsMissingConfig. There is no
	fallback, the caller decides what to do.

    A default k-point path for band structure calculations.

    Reading and writing tables as JSON or TOML, optionally compressed with
	gzip or zstd, so users can keep their own presets.

The values come from the OpenMX documentation and are used as given, nothing
is computed from them. Preparing, running and reading OpenMX calculations is
done by the subpackage qm.
*/
package openmx
