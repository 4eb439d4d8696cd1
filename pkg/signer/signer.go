// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package signer derives extrinsic signing identities from secret URIs.
//
// A secret URI is a phrase optionally followed by derivation junctions:
//
//	<phrase>[//hard-junction | /soft-junction]*
//
// The phrase seeds an HKDF-SHA512 expansion with the optional password as
// salt material; junctions are mixed in with domain-separated blake2b-256
// rounds. The resulting 32-byte seed backs an ed25519 key pair. Secret
// material is zeroed once the key pair is constructed and never appears in
// errors or logs.
package signer

import (
	"crypto/ed25519"
	"crypto/sha512"
	"fmt"
	"io"
	"strings"

	"github.com/gatewaylabs/contract-cli/pkg/constants"
	"github.com/luxfi/ids"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/hkdf"
)

const (
	// hkdfSalt domain-separates contract signing keys from any other
	// HKDF use of the same phrase.
	hkdfSalt = "contract-cli/signer/v1"

	hardJunctionTag = "hard"
	softJunctionTag = "soft"
)

type junction struct {
	name string
	hard bool
}

// Signer authorizes extrinsics. It holds only the derived ed25519 key pair;
// the phrase and password it was built from are not retained.
type Signer struct {
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

// FromSURI derives a Signer from a secret URI and an optional password.
// Derivation failures are deliberately terse: the secret must never round-trip
// through an error message. Never retry a failed derivation, a bad secret
// cannot succeed on a second attempt.
func FromSURI(suri string, password string) (*Signer, error) {
	phrase, junctions, err := parseSURI(suri)
	if err != nil {
		return nil, err
	}

	seed := make([]byte, ed25519.SeedSize)
	kdf := hkdf.New(sha512.New, []byte(phrase), []byte(hkdfSalt), []byte(password))
	if _, err := io.ReadFull(kdf, seed); err != nil {
		return nil, fmt.Errorf("%w: key expansion failed", constants.ErrKeyDerivation)
	}

	for _, j := range junctions {
		tag := softJunctionTag
		if j.hard {
			tag = hardJunctionTag
		}
		mixed := blake2b.Sum256(append(append(seed, tag...), j.name...))
		copy(seed, mixed[:])
	}

	priv := ed25519.NewKeyFromSeed(seed)
	zero(seed)

	return &Signer{
		priv: priv,
		pub:  priv.Public().(ed25519.PublicKey),
	}, nil
}

// AccountIDFromSURI derives only the account identity of a secret URI.
// Used where a command needs the identity of a counterparty (target,
// requester) without keeping its signing key around.
func AccountIDFromSURI(suri string) (ids.ID, error) {
	s, err := FromSURI(suri, "")
	if err != nil {
		return ids.Empty, err
	}
	defer s.Zero()
	return s.AccountID(), nil
}

// AccountIDFromPublicKey maps raw public key bytes to an account identity.
func AccountIDFromPublicKey(pub []byte) ids.ID {
	return ids.ID(blake2b.Sum256(pub))
}

// Sign signs payload with the derived key.
func (s *Signer) Sign(payload []byte) []byte {
	return ed25519.Sign(s.priv, payload)
}

// Public returns the public key bytes.
func (s *Signer) Public() []byte {
	return append([]byte(nil), s.pub...)
}

// AccountID is the deterministic on-chain identity of this signer.
func (s *Signer) AccountID() ids.ID {
	return AccountIDFromPublicKey(s.pub)
}

// Zero wipes the private key material. The Signer is unusable afterwards.
func (s *Signer) Zero() {
	zero(s.priv)
}

func parseSURI(suri string) (string, []junction, error) {
	if suri == "" {
		return "", nil, fmt.Errorf("%w: empty secret URI", constants.ErrKeyDerivation)
	}

	phrase, rest, found := strings.Cut(suri, "/")
	if found && rest == "" {
		return "", nil, fmt.Errorf("%w: empty derivation junction", constants.ErrKeyDerivation)
	}
	var junctions []junction
	for rest != "" {
		hard := false
		if strings.HasPrefix(rest, "/") {
			hard = true
			rest = rest[1:]
		}
		name, tail, _ := strings.Cut(rest, "/")
		if name == "" {
			return "", nil, fmt.Errorf("%w: empty derivation junction", constants.ErrKeyDerivation)
		}
		junctions = append(junctions, junction{name: name, hard: hard})
		rest = tail
	}
	return phrase, junctions, nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
