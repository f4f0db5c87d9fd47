// SPDX-License-Identifier: MIT

package cliquehash

import (
	"math/bits"

	"github.com/pkg/errors"
)

// validate checks the structural constraints every Index needs.
func (cfg Config) validate(strict bool) error {
	switch {
	case cfg.KeySize < 1:
		return errors.Wrapf(ErrConfig, "key size must be ≥ 1, got %d", cfg.KeySize)
	case cfg.HashBits < 1:
		return errors.Wrapf(ErrConfig, "hash bits must be ≥ 1, got %d", cfg.HashBits)
	case cfg.HashBits > maxHashBits:
		return errors.Wrapf(ErrConfig, "hash bits must be ≤ %d, got %d", maxHashBits, cfg.HashBits)
	case cfg.HashBits < cfg.KeySize:
		// fewer than one bit per element: every hash collapses to the remainder
		return errors.Wrapf(ErrConfig, "hash bits %d leave no bits per element for key size %d",
			cfg.HashBits, cfg.KeySize)
	case cfg.TableSize < 1:
		return errors.Wrapf(ErrConfig, "table size must be ≥ 1, got %d", cfg.TableSize)
	}
	if strict && uint64(cfg.TableSize) < uint64(1)<<cfg.HashBits {
		return errors.Wrapf(ErrConfig, "table size %d smaller than hash domain 2^%d",
			cfg.TableSize, cfg.HashBits)
	}

	return nil
}

// ConfigFor derives a Config under which every clique of keySize node IDs in
// [0, maxNodeID] hashes to its own bucket: each element gets enough bits for
// maxNodeID, and the table covers the whole hash domain.
//
// Errors:
//   - ErrConfig: keySize < 1, maxNodeID < 0, or the derived table would exceed
//     2^30 buckets.
func ConfigFor(keySize, maxNodeID int) (Config, error) {
	if keySize < 1 {
		return Config{}, errors.Wrapf(ErrConfig, "key size must be ≥ 1, got %d", keySize)
	}
	if maxNodeID < 0 {
		return Config{}, errors.Wrapf(ErrConfig, "max node ID must be ≥ 0, got %d", maxNodeID)
	}

	perElem := bits.Len(uint(maxNodeID))
	if perElem == 0 {
		perElem = 1
	}
	hashBits := perElem * keySize
	if hashBits > maxDerivedHashBits {
		return Config{}, errors.Wrapf(ErrConfig, "%d nodes of %d bits need a 2^%d table",
			keySize, perElem, hashBits)
	}

	return Config{TableSize: 1 << hashBits, HashBits: hashBits, KeySize: keySize}, nil
}
