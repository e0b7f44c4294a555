package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSite = "https://rightsignature.com"

func TestNewBuilder(t *testing.T) {
	b, err := NewBuilder(testSite + "/")
	require.NoError(t, err)
	assert.Equal(t, testSite, b.Site())

	_, err = NewBuilder("rightsignature.com")
	assert.Error(t, err)

	_, err = NewBuilder("ftp://rightsignature.com")
	assert.Error(t, err)
}

func TestPaths(t *testing.T) {
	b, err := NewBuilder(testSite)
	require.NoError(t, err)

	assert.Equal(t, "/api/templates.xml", b.Templates())
	assert.Equal(t, "/api/templates/MYGUID.xml", b.Template("MYGUID"))
	assert.Equal(t, "/api/templates/MYGUID/prepackage.xml", b.Prepackage("MYGUID"))
	assert.Equal(t, "/api/templates/generate_build_token.xml", b.BuildToken())
	assert.Equal(t, "/api/documents/ABCDEFGH123/signer_links.xml", b.SignerLinks("ABCDEFGH123"))
}

func TestURLs(t *testing.T) {
	b, err := NewBuilder(testSite)
	require.NoError(t, err)

	assert.Equal(t, testSite+"/builder/new?rt=REDIRECT_TOKEN", b.BuilderURL("REDIRECT_TOKEN"))
	assert.Equal(t, testSite+"/signatures/embedded?rt=slkfj2", b.EmbeddedSigningURL("slkfj2", ""))
	assert.Equal(t, testSite+"/builder/new?rt=a+b/c=", b.BuilderURL("a+b/c="))
	assert.Equal(t, testSite+"/signatures/embedded?rt=a+b/c=", b.EmbeddedSigningURL("a+b/c=", ""))
	assert.Equal(t,
		testSite+"/signatures/embedded?rt=slkfj2&redirect_location=http%3A%2F%2Fexample.com%2Fdone",
		b.EmbeddedSigningURL("slkfj2", "http://example.com/done"),
	)
}
