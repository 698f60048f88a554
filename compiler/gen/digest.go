package gen

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Digest returns the id of o: the hex SHA-256 of its fields, kind included,
// encoded as msgpack with map keys sorted.
func Digest(o Options) (string, error) {
	fields, err := Fields(o)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(fields); err != nil {
		return "", fmt.Errorf("gen: encode %s options: %w", o.Kind(), err)
	}
	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:]), nil
}
