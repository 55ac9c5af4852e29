package usecase

import (
	"crypto/rand"
	"math"
	"math/big"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces  = regexp.MustCompile(`[\s_]+`)
	slugDashes  = regexp.MustCompile(`-+`)
)

// makeSlug derives a URL-friendly slug from a title. Slugs are immutable
// once assigned; collisions are resolved by the caller with slugSuffix.
func makeSlug(title string) string {
	slug := strings.ToLower(title)
	slug = slugInvalid.ReplaceAllString(slug, "")
	slug = slugSpaces.ReplaceAllString(slug, "-")
	slug = slugDashes.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// slugSuffix returns a short random token for slug collision resolution.
func slugSuffix() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:6]
}

// readingTime estimates minutes to read at 200 words per minute, with a
// floor of one minute.
func readingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := int(math.Round(float64(words) / 200))
	if minutes < 1 {
		return 1
	}
	return minutes
}

const passwordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%"

// generatePassword builds a random initial password for admin-created
// educator accounts.
func generatePassword(length int) string {
	var b strings.Builder
	max := big.NewInt(int64(len(passwordChars)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken
			panic(err)
		}
		b.WriteByte(passwordChars[n.Int64()])
	}
	return b.String()
}
