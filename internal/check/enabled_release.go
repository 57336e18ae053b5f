// SPDX-License-Identifier: MIT

//go:build !lvlseqdebug

package check

// Enabled is false unless built with -tags lvlseqdebug.
const Enabled = false
