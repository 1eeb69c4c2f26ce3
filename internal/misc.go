// SPDX-License-Identifier: MIT

package internal

var (
	// ErrParamNilPoint indicates a forbidden nil or empty point.
	ErrParamNilPoint = ParameterError("nil or empty point")

	// ErrParamInvalidPointEncoding indicates an invalid point encoding has been provided.
	ErrParamInvalidPointEncoding = ParameterError("invalid point encoding")

	// ErrNotOnCurve indicates a decoded or constructed point does not
	// satisfy the curve equation.
	ErrNotOnCurve = ParameterError("point is not on the curve")

	// ErrNotTorsionFree indicates a point lies outside the prime-order subgroup.
	ErrNotTorsionFree = ParameterError("point is not torsion-free")
)
