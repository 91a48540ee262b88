package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// keyVersion is bumped whenever the DOT produced for a schedule changes
// shape, so artifacts rendered by older binaries stop matching.
const keyVersion = 1

// ArtifactKey returns the cache key of a diagram rendered from dot in the
// given format. scale distinguishes raster resolutions; vector formats pass 0.
//
//	artifact/v1/png@2/<sha256 of dot>
func ArtifactKey(dot, format string, scale float64) string {
	var b strings.Builder
	b.WriteString("artifact/v")
	b.WriteString(strconv.Itoa(keyVersion))
	b.WriteByte('/')
	b.WriteString(format)
	if scale > 0 {
		b.WriteByte('@')
		b.WriteString(strconv.FormatFloat(scale, 'g', -1, 64))
	}
	b.WriteByte('/')
	b.WriteString(Hash([]byte(dot)))
	return b.String()
}

// Hash returns the hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
