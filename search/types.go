// SPDX-License-Identifier: MIT

package search

import "errors"

// ErrUnsorted is the panic cause, under the lvlseqdebug build tag, when a
// query is made on a range that is not sorted by the given order.
var ErrUnsorted = errors.New("search: range is not sorted")
