// SPDX-License-Identifier: GPL-3.0-only

package geodata

import (
	"encoding/hex"
	"encoding/json"

	"golang.org/x/crypto/blake2b"
)

// digestOf hashes the canonical JSON form of the tree, so whitespace and
// ignored upstream fields in the source do not change it.
func digestOf(countries []Country) string {
	if countries == nil {
		countries = []Country{}
	}
	data, err := json.Marshal(countries)
	if err != nil {
		return ""
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
