// Package manifest records what a run was built from so that results can be
// traced back to their code, configuration and inputs.
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RunManifest identifies a training or scoring run.
//
// Empty GitCommit and nil Seed mean "not recorded".
type RunManifest struct {
	Version           string  `json:"version"`
	GitCommit         string  `json:"git_commit,omitempty"`
	Seed              *uint64 `json:"seed,omitempty"`
	ConfigHash        string  `json:"config_hash"`
	InputHash         string  `json:"input_hash"`
	FeatureSchemaHash string  `json:"feature_schema_hash"`
}

// HashBytes returns the hex SHA-256 digest of b.
func HashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// HashReader returns the hex SHA-256 digest of everything read from r.
func HashReader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("hash input: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Canonical returns the key=value serialization the hash is computed over.
// Fields appear in a fixed order, each terminated by ';'.
func (m RunManifest) Canonical() string {
	seed := ""
	if m.Seed != nil {
		seed = strconv.FormatUint(*m.Seed, 10)
	}

	var b strings.Builder
	for _, kv := range [...][2]string{
		{"version", m.Version},
		{"git_commit", m.GitCommit},
		{"seed", seed},
		{"config_hash", m.ConfigHash},
		{"input_hash", m.InputHash},
		{"feature_schema_hash", m.FeatureSchemaHash},
	} {
		b.WriteString(kv[0])
		b.WriteByte('=')
		b.WriteString(kv[1])
		b.WriteByte(';')
	}
	return b.String()
}

// Hash returns the hex SHA-256 of the canonical serialization. Identical
// manifests hash identically; changing any field changes the hash.
func (m RunManifest) Hash() string {
	return HashBytes([]byte(m.Canonical()))
}

// WriteJSON encodes m as indented JSON, adding its hash under "hash".
func (m RunManifest) WriteJSON(w io.Writer) error {
	out := struct {
		RunManifest
		Hash string `json:"hash"`
	}{m, m.Hash()}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return nil
}

// SeedOf is a convenience for filling RunManifest.Seed.
func SeedOf(seed uint64) *uint64 {
	return &seed
}
