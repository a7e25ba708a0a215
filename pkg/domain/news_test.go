package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_Valid(t *testing.T) {
	assert.True(t, CategoryAI.Valid())
	assert.True(t, CategoryRobotics.Valid())
	assert.True(t, CategoryBiotech.Valid())
	assert.False(t, Category("sports").Valid())
	assert.False(t, Category("").Valid())
}

func TestCategories(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 3)
	assert.Equal(t, []Category{CategoryAI, CategoryRobotics, CategoryBiotech}, cats)
	for _, c := range cats {
		assert.True(t, c.Valid())
		assert.NotEmpty(t, c.Name())
		assert.NotEmpty(t, c.Keywords())
	}
}

func TestCategory_Name(t *testing.T) {
	assert.Equal(t, "Artificial Intelligence", CategoryAI.Name())
	assert.Equal(t, "Robotics", CategoryRobotics.Name())
	assert.Equal(t, "Biotechnology", CategoryBiotech.Name())
	assert.Equal(t, "Technology", Category("unknown").Name())
}

func TestNewID(t *testing.T) {
	idPattern := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.Regexp(t, idPattern, id)
		assert.False(t, seen[id], "duplicate id generated: %s", id)
		seen[id] = true
	}
}

func TestImageURLFor(t *testing.T) {
	assert.Equal(t, "https://picsum.photos/seed/AIEthicsBoard/400/300", ImageURLFor("AI Ethics Board"))
	assert.Equal(t, "https://picsum.photos/seed/news/400/300", ImageURLFor(""))
	// deterministic
	assert.Equal(t, ImageURLFor("Same Title"), ImageURLFor("Same Title"))
}
