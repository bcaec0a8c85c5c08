package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLengthPrice(t *testing.T) {
	assert.Equal(t, int64(250), LengthPrice("Up to 30 seconds"))
	assert.Equal(t, int64(850), LengthPrice("1-3 minutes"))
	assert.Equal(t, int64(0), LengthPrice("Custom length"))
	assert.Equal(t, int64(0), LengthPrice("no such tier"))
}

func TestFeaturePrice(t *testing.T) {
	assert.Equal(t, int64(300), FeaturePrice("Visual Effects"))
	assert.Equal(t, int64(100), FeaturePrice("Custom Transitions"))
	assert.Equal(t, int64(0), FeaturePrice("no such feature"))
}

func TestLookupsByID(t *testing.T) {
	e, ok := LengthByID("180")
	assert.True(t, ok)
	assert.Equal(t, "1-3 minutes", e.Name)

	f, ok := FeatureByID("voiceover")
	assert.True(t, ok)
	assert.Equal(t, int64(250), f.Price)

	v, ok := VideoTypeByID("commercial")
	assert.True(t, ok)
	assert.Equal(t, "Commercial", v.Name)

	_, ok = LengthByID("bogus")
	assert.False(t, ok)
}

func TestDefaultsExistInCatalog(t *testing.T) {
	assert.Equal(t, int64(850), LengthPrice(DefaultVideoLength))

	found := false
	for _, e := range VideoTypes {
		if e.Name == DefaultVideoType {
			found = true
		}
	}
	assert.True(t, found)
}
