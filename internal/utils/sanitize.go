package utils

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Organization timezone used for human-readable object keys
var saoPaulo = mustLoadLocation("America/Sao_Paulo")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}

// SanitizeForKey lowercases, strips accents and replaces anything outside
// [a-z0-9] with underscores, collapsing repeats. The result is safe for use
// inside a blob object key and still recognizable by a human browsing the
// bucket.
func SanitizeForKey(s string) string {
	decomposed := norm.NFD.String(strings.ToLower(s))

	var b strings.Builder
	lastUnderscore := false
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// accent marks dropped after decomposition
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}

// BuildComprovanteKey builds the deterministic object key for a
// proof-of-payment upload: sanitized event title, sanitized applicant name
// and the local (America/Sao_Paulo) submission timestamp, keeping the bucket
// human-browsable.
func BuildComprovanteKey(eventoTitulo, nome, originalFilename string, submittedAt time.Time) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	local := submittedAt.In(saoPaulo)
	return SanitizeForKey(eventoTitulo) + "/" +
		SanitizeForKey(nome) + "_" +
		local.Format("2006-01-02_15-04-05") + ext
}
