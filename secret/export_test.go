// SPDX-License-Identifier: MIT
// Test-only exports of unexported helpers.

package secret

// RoundNear exposes roundNear to the external secret_test package.
var RoundNear = roundNear
