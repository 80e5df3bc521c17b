package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_CatalogsHaveSameKeys(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	for key := range b.messages[English] {
		assert.True(t, b.Has(Vietnamese, key), "vi catalog is missing %q", key)
	}
	for key := range b.messages[Vietnamese] {
		assert.True(t, b.Has(English, key), "en catalog has no %q", key)
	}
}

func TestTranslator_T(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "About us", b.Translator(English).T("footer.links.company.about"))
	assert.Equal(t, "Về chúng tôi", b.Translator(Vietnamese).T("footer.links.company.about"))
	assert.Equal(t, "missing.key", b.Translator(Vietnamese).T("missing.key"))
}

func TestTranslator_FallsBackToDefaultLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"l/en.yaml": {Data: []byte("greeting:\n  hello: Hello\n  bye: Bye\n")},
		"l/vi.yaml": {Data: []byte("greeting:\n  hello: Xin chào\n")},
	}
	b, err := Load(fsys, "l")
	require.NoError(t, err)

	vi := b.Translator(Vietnamese)
	assert.Equal(t, "Xin chào", vi.T("greeting.hello"))
	assert.Equal(t, "Bye", vi.T("greeting.bye"))
}

func TestTranslator_UnknownLocaleUsesDefault(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	tr := b.Translator(Locale("fr"))
	assert.Equal(t, English, tr.Locale())
	assert.Equal(t, "Home", tr.T("common.nav.home"))
}

func TestTranslator_Tf(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	got := b.Translator(English).Tf("footer.copyright", map[string]string{"year": "2025"})
	assert.Equal(t, "© 2025 OpenAutomate. All rights reserved.", got)
}

func TestLoad_MissingDefaultCatalog(t *testing.T) {
	_, err := Load(fstest.MapFS{"l/vi.yaml": {Data: []byte("a: b\n")}}, "l")
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(fstest.MapFS{"l/en.yaml": {Data: []byte("a: [b\n")}}, "l")
	assert.Error(t, err)
}

func TestTranslator_List(t *testing.T) {
	fsys := fstest.MapFS{
		"l/en.yaml": {Data: []byte("page:\n  keywords:\n    - one\n    - two\n  other:\n    - x\n")},
		"l/vi.yaml": {Data: []byte("page:\n  keywords:\n    - một\n")},
	}
	b, err := Load(fsys, "l")
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "two"}, b.Translator(English).List("page.keywords"))
	assert.Equal(t, []string{"một"}, b.Translator(Vietnamese).List("page.keywords"))
	assert.Equal(t, []string{"x"}, b.Translator(Vietnamese).List("page.other"))
	assert.Empty(t, b.Translator(English).List("page.missing"))
}

func TestDefault_PageKeywords(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	for _, section := range []string{"about", "contact", "guide"} {
		assert.Len(t, b.Translator(English).List(section+".meta.keywords"), 6, section)
		assert.Len(t, b.Translator(Vietnamese).List(section+".meta.keywords"), 6, section)
	}
}
