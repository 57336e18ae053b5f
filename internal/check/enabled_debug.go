// SPDX-License-Identifier: MIT

//go:build lvlseqdebug

package check

// Enabled is true in lvlseqdebug builds.
const Enabled = true
