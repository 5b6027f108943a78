package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultsGrantOnlyRequiredCategories(t *testing.T) {
	schema := NewSchema(nil)

	defaults := schema.Defaults()

	assert.Len(t, defaults, 6)
	assert.True(t, defaults[CategoryEssential])
	assert.False(t, defaults[CategoryAnalytics])
	assert.False(t, defaults[CategoryFunctional])
	assert.False(t, defaults[CategoryMarketing])
	assert.False(t, defaults[CategoryPerformance])
	assert.False(t, defaults[CategoryPersonalization])
}

func TestAllGranted(t *testing.T) {
	schema := NewSchema(nil)

	for key, granted := range schema.AllGranted() {
		assert.True(t, granted, "category %s should be granted", key)
	}
}

func TestNormalizeCoercesRequiredCategories(t *testing.T) {
	schema := NewSchema(nil)

	normalized := schema.Normalize(PreferenceSet{
		CategoryEssential: false, // attempt to revoke a required category
		CategoryAnalytics: true,
	})

	assert.True(t, normalized[CategoryEssential])
	assert.True(t, normalized[CategoryAnalytics])
	assert.False(t, normalized[CategoryMarketing])
}

func TestNormalizeDropsUnknownKeys(t *testing.T) {
	schema := NewSchema(nil)

	normalized := schema.Normalize(PreferenceSet{
		"not-a-category": true,
		CategoryMarketing: true,
	})

	_, present := normalized["not-a-category"]
	assert.False(t, present)
	assert.True(t, normalized[CategoryMarketing])
	assert.Len(t, normalized, 6)
}

func TestIsValid(t *testing.T) {
	schema := NewSchema([]CategoryDescriptor{
		{Key: "essential", Required: true},
		{Key: "analytics"},
	})

	assert.True(t, schema.IsValid(PreferenceSet{"essential": true, "analytics": false}))
	assert.False(t, schema.IsValid(PreferenceSet{"essential": false, "analytics": true}), "revoked required category")
	assert.False(t, schema.IsValid(PreferenceSet{"essential": true}), "missing configured key")
}

func TestCustomCategoryConfiguration(t *testing.T) {
	schema := NewSchema([]CategoryDescriptor{
		{Key: "mandatory", Label: "Mandatory", Required: true},
		{Key: "tracking", Label: "Tracking"},
	})

	assert.Len(t, schema.Categories(), 2)
	assert.True(t, schema.Knows("tracking"))
	assert.False(t, schema.Knows("analytics"))

	defaults := schema.Defaults()
	assert.True(t, defaults["mandatory"])
	assert.False(t, defaults["tracking"])
}

func TestPreferenceSetCloneIsIndependent(t *testing.T) {
	original := PreferenceSet{CategoryAnalytics: true}

	cloned := original.Clone()
	cloned[CategoryAnalytics] = false

	assert.True(t, original[CategoryAnalytics])
}
