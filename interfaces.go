/*
 * interfaces.go, part of gblearn.
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

package gblearn

// Error is the interface for errors that all packages in this library implement.
// The Decorate method allows to add and retrieve info from the error, without
// changing its type or wrapping it around something else. Each call returns the
// current "decoration" slice of strings. If passed an empty string, it just
// returns the current value without adding anything. The decoration slice
// should contain the functions in the calling stack, plus, for each function,
// any relevant information, in the format "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

// DumpError is the interface for errors produced while reading or writing
// dump files.
type DumpError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// KindError is implemented by errors that carry one of the broad failure
// kinds (UnknownMethod, MissingParameter, MalformedRecord, IOFailure)
// defined by the producing package, so callers can branch on the kind
// without parsing messages.
type KindError interface {
	Error
	Kind() string
}

// The broad failure kinds reported through KindError. Every fatal error
// produced by the subpackages carries exactly one of these.
const (
	UnknownMethod    = "UnknownMethod"    //a selection method name not in the registry
	MissingParameter = "MissingParameter" //a required caller-supplied parameter was absent
	MalformedRecord  = "MalformedRecord"  //a dump file token could not be parsed as declared
	IOFailure        = "IOFailure"        //the underlying file could not be read or written
)

// LastStepError has a useless method to distinguish the harmless error
// signaling that a dump file has no further timesteps, so it can be filtered
// in a typeswitch that looks for this interface.
type LastStepError interface {
	DumpError
	NormalLastStepTermination()
}
