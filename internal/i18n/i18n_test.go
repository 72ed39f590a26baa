package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestEmbeddedCatalogs(t *testing.T) {
	b, err := Embedded()
	require.NoError(t, err)

	assert.Equal(t, []language.Tag{language.French, language.English}, b.Tags())
	assert.Contains(t, b.Keys(), "projects.more")

	assert.Equal(t, "Voir plus", b.T(language.French, "projects.more"))
	assert.Equal(t, "Voir moins", b.T(language.French, "projects.less"))
	assert.Equal(t, "Show more", b.T(language.English, "projects.more"))
}

func TestFormattedMessage(t *testing.T) {
	b, err := Embedded()
	require.NoError(t, err)

	assert.Equal(t, "Voir les détails du projet SAE 14", b.T(language.French, "card.aria_details", "SAE 14"))
	assert.Equal(t, "View details of project SAE 14", b.T(language.English, "card.aria_details", "SAE 14"))
}

func TestEveryLocaleDefinesEveryKey(t *testing.T) {
	b, err := Embedded()
	require.NoError(t, err)

	for _, tag := range b.Tags() {
		for _, key := range b.Keys() {
			assert.NotEqual(t, key, b.T(tag, key, "x"), "%s missing %s", tag, key)
		}
	}
}

func TestResolve(t *testing.T) {
	b, err := Embedded()
	require.NoError(t, err)

	tests := []struct {
		name     string
		fallback string
		override string
		accept   string
		want     language.Tag
	}{
		{"default", "", "", "", language.French},
		{"accept english", "fr", "", "en-US,en;q=0.9", language.English},
		{"override wins", "fr", "fr", "en-US", language.French},
		{"invalid override ignored", "fr", "zz-!!", "en", language.English},
		{"unsupported accept uses fallback", "en", "", "de-DE", language.English},
		{"unsupported fallback uses base", "de", "", "", language.French},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Resolve(tt.fallback, tt.override, tt.accept))
		})
	}
}

func TestLoadRejectsMissingKey(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/fr.yaml": {Data: []byte("locale: fr\nmessages:\n  a: A\n  b: B\n")},
		"locales/en.yaml": {Data: []byte("locale: en\nmessages:\n  a: A\n")},
	}

	_, err := Load(fsys)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestLoadRequiresBaseLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("locale: en\nmessages:\n  a: A\n")},
	}

	_, err := Load(fsys)
	require.Error(t, err)
}
