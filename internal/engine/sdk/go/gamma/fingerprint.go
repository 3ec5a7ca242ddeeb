/**
 * Copyright 2019 The Vearch Authors.
 *
 * This source code is licensed under the Apache License, Version 2.0 license
 * found in the LICENSE file in the root directory of this source tree.
 */

package gamma

import (
	"github.com/spaolacci/murmur3"
)

// Fingerprint hashes an encoded request, for log correlation and cache keys.
func Fingerprint(buffer []byte) uint64 {
	return murmur3.Sum64(buffer)
}
