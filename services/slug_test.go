package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", Slugify("Hello, World!"))
	assert.Equal(t, "my-first-post", Slugify("My First Post"))
	assert.Equal(t, "100-go-tips", Slugify("100% Go Tips"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestSlugifyIsIdempotent(t *testing.T) {
	once := Slugify("Some Catchy Title?!")
	assert.Equal(t, once, Slugify(once))
}

func TestSlugifyIsDeterministic(t *testing.T) {
	assert.Equal(t, Slugify("Hello, World!"), Slugify("Hello, World!"))
}

func TestSlugifyCollapsesToSameSlug(t *testing.T) {
	// Titles that normalize identically collide; create relies on this to
	// reject the second post.
	assert.Equal(t, Slugify("Hello World"), Slugify("Hello, World!"))
}
