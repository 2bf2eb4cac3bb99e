package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainSource   = "qsgal/source/v1"
	DomainManifest = "qsgal/manifest/v1"
	DomainMesh     = "qsgal/mesh/v1"
	DomainBuild    = "qsgal/build/v1"
)

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// SourceHash computes the content hash of QSGAL source text.
func SourceHash(source string) string {
	return hashWithDomain(DomainSource, []byte(source))
}

// ManifestHash computes the content hash of a manifest from its
// canonical JSON form.
func ManifestHash(m Manifest) (string, error) {
	canonical, err := MarshalCanonical(m.canonicalMap())
	if err != nil {
		return "", fmt.Errorf("ManifestHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainManifest, canonical), nil
}

// MeshHash computes the content hash of OBJ mesh text.
func MeshHash(mesh string) string {
	return hashWithDomain(DomainMesh, []byte(mesh))
}

// BuildID computes the identity of a build: one source compiled for one target.
func BuildID(sourceHash, target string) string {
	canonical, err := MarshalCanonical(map[string]any{
		"source_hash": sourceHash,
		"target":      target,
	})
	if err != nil {
		// Plain strings always marshal.
		panic(err)
	}
	return hashWithDomain(DomainBuild, canonical)
}

func (m Manifest) canonicalMap() map[string]any {
	cmds := make([]any, len(m.Commands))
	for i, c := range m.Commands {
		cmds[i] = map[string]any{
			"op":    c.Op,
			"value": c.Value,
		}
	}
	return map[string]any{"commands": cmds}
}
