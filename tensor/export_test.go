// SPDX-License-Identifier: MIT

package tensor

// Test bridge: exposes unexported helpers to package tensor_test only.
var (
	ExportedWrap  = wrap[int]
	ExportedRound = round[float64]
)
