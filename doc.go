/*
 * doc.go, part of gblearn.
 *
 * Copyright 2019 The gblearn developers
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
 */

/*Package gblearn provides machinery for extracting grain-boundary structures
from atomistic simulation output.

	**Capabilities**

    Reads/writes LAMMPS text dump files with an arbitrary number of
	timesteps per file, including gzip- and zstd-compressed files.

    Parses per-atom quantities beyond the standard id/type/x/y/z columns
	(centro-symmetry parameters, common-neighbor-analysis codes, energies...)
	into typed, atom-aligned columns discovered from each file's own header.

    Selects the subset of atoms that lie on a grain boundary, by
	thresholding a per-atom scalar field or by common-neighbor-analysis
	codes, and builds a GrainBoundary structure from the selection.

    Plots the distribution of any per-atom scalar field.

The root package only carries the error interfaces shared by the
subpackages; the functionality lives in gblearn/lammps, gblearn/selection,
gblearn/gb and gblearn/gbplot.
*/
package gblearn
