// SPDX-License-Identifier: MIT

package affinity

import "errors"

// ErrInvalidConfig is returned by NewBuilder when the similarity rule is out of range.
var ErrInvalidConfig = errors.New("affinity: invalid config")
