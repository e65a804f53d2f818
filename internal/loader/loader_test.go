package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ihsansencan/sitesgouv-go/internal/model"
)

// writeSource drops raw bytes into a temp file and returns its path.
// Bytes are written as-is, so tests can exercise the Latin-1 decoding.
func writeSource(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sitesgouv.txt")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestLoadFromFile_SimpleAccept(t *testing.T) {
	path := writeSource(t, []byte("economie.gouv.fr\n"))

	src, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"economie.gouv.fr"}, src.Domains)
	assert.Equal(t, 1, src.RawLines)
	assert.Empty(t, src.Rejected)
}

func TestLoadFromFile_NormalizesCaseWWWAndWhitespace(t *testing.T) {
	path := writeSource(t, []byte("WWW.Sante.Gouv.Fr  \n"))

	src, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"sante.gouv.fr"}, src.Domains)
}

func TestLoadFromFile_TabSeparatedTakesFirstField(t *testing.T) {
	path := writeSource(t, []byte("impots.gouv.fr\tDirection des Finances\n"))

	src, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"impots.gouv.fr"}, src.Domains)
}

func TestLoadFromFile_SpaceSeparatedTakesFirstField(t *testing.T) {
	path := writeSource(t, []byte("legifrance.gouv.fr le service public de la loi\n"))

	src, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"legifrance.gouv.fr"}, src.Domains)
}

func TestLoadFromFile_RejectsInvalidSuffix(t *testing.T) {
	path := writeSource(t, []byte("notadomain\n"))

	src, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Empty(t, src.Domains)
	require.Len(t, src.Rejected, 1)
	assert.Equal(t, model.RejectedLine{Number: 1, Text: "notadomain"}, src.Rejected[0])
}

func TestLoadFromFile_CommentLinesAreNotRejected(t *testing.T) {
	path := writeSource(t, []byte("# comment line\n"))

	src, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Empty(t, src.Domains)
	assert.Empty(t, src.Rejected)
	// The comment still counts as a raw (non-empty) line.
	assert.Equal(t, 1, src.RawLines)
}

func TestLoadFromFile_EmptyFile(t *testing.T) {
	path := writeSource(t, nil)

	src, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Zero(t, src.RawLines)
	assert.Empty(t, src.Domains)
	assert.Empty(t, src.Rejected)
}

func TestLoadFromFile_BlankLinesAreSkipped(t *testing.T) {
	path := writeSource(t, []byte("\n   \nsante.gouv.fr\n\t\n"))

	src, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 1, src.RawLines)
	assert.Equal(t, []string{"sante.gouv.fr"}, src.Domains)
}

func TestLoadFromFile_DeduplicatesAndSorts(t *testing.T) {
	path := writeSource(t, []byte("sante.gouv.fr\neconomie.gouv.fr\nSANTE.gouv.fr\n"))

	src, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"economie.gouv.fr", "sante.gouv.fr"}, src.Domains)
	assert.Equal(t, 3, src.RawLines)
}

func TestLoadFromFile_Latin1BytesDecode(t *testing.T) {
	// 0xE9 is 'é' in ISO 8859-1. Accented runes are printable and
	// non-space, so they survive normalization untouched.
	path := writeSource(t, []byte("d\xe9fense-civile.gouv.fr\n"))

	src, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"défense-civile.gouv.fr"}, src.Domains)
}

func TestLoadFromFile_RejectedLineIsTruncatedTo50Chars(t *testing.T) {
	long := strings.Repeat("x", 60)
	path := writeSource(t, []byte(long+"\n"))

	src, err := LoadFromFile(path)
	require.NoError(t, err)

	require.Len(t, src.Rejected, 1)
	assert.Equal(t, strings.Repeat("x", 50), src.Rejected[0].Text)
}

func TestLoadFromFile_RejectionKeepsFileOrder(t *testing.T) {
	path := writeSource(t, []byte("bad-one\nsante.gouv.fr\nbad-two\n"))

	src, err := LoadFromFile(path)
	require.NoError(t, err)

	require.Len(t, src.Rejected, 2)
	assert.Equal(t, 1, src.Rejected[0].Number)
	assert.Equal(t, "bad-one", src.Rejected[0].Text)
	assert.Equal(t, 3, src.Rejected[1].Number)
	assert.Equal(t, "bad-two", src.Rejected[1].Text)
}

func TestLoadFromFile_Idempotent(t *testing.T) {
	path := writeSource(t, []byte("sante.gouv.fr\nbad line here\n# note\neconomie.gouv.fr\n"))

	first, err := LoadFromFile(path)
	require.NoError(t, err)
	second, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLoadFromFile_MissingFileIsAnError(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Economie.Gouv.FR", "economie.gouv.fr"},
		{"strips www prefix", "www.sante.gouv.fr", "sante.gouv.fr"},
		{"strips www anywhere", "sante.www.gouv.fr", "sante.gouv.fr"},
		{"drops whitespace runes", "sante .gouv.fr", "sante.gouv.fr"},
		{"drops non-printable runes", "sante\x01.gouv.fr", "sante.gouv.fr"},
		{"keeps accents", "départements.gouv.fr", "départements.gouv.fr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestHasValidSuffix(t *testing.T) {
	valid := []string{
		"economie.gouv.fr",
		"mairie.fr",
		"gouv.nc",
		"province-sud.nc",
		"service-public.pf.gouv.pf",
		"charente.pref.gouv.fr",
	}
	for _, d := range valid {
		assert.True(t, HasValidSuffix(d), d)
	}

	invalid := []string{"", "notadomain", "example.com", "gouv.fr.org"}
	for _, d := range invalid {
		assert.False(t, HasValidSuffix(d), d)
	}
}
