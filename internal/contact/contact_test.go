package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_EmailAndPhone(t *testing.T) {
	text := `Jane Smith
Seattle, WA
jane@example.com | (555) 123-4567`

	info := Extract(text)

	assert.Equal(t, []string{"jane@example.com"}, info.Emails)
	require.Len(t, info.Phones, 1)
	assert.Equal(t, "(555) 123-4567", info.Phones[0])
}

func TestExtract_DuplicatesCollapse(t *testing.T) {
	text := `jane@example.com
Call (555) 123-4567 or 555.123.4567
Email: jane@example.com`

	info := Extract(text)

	assert.Equal(t, []string{"jane@example.com"}, info.Emails)
	// same digits, different formatting: first occurrence's format is kept
	assert.Equal(t, []string{"(555) 123-4567"}, info.Phones)
}

func TestExtract_MultipleEmailsKeptInOrder(t *testing.T) {
	info := Extract("work: jane@corp.com personal: jane@example.com")

	assert.Equal(t, []string{"jane@corp.com", "jane@example.com"}, info.Emails)
}

func TestExtract_ProfileLinks(t *testing.T) {
	text := `linkedin.com/in/jane-smith
https://github.com/janesmith
https://janesmith.dev/blog`

	info := Extract(text)

	assert.Equal(t, "linkedin.com/in/jane-smith", info.LinkedIn)
	assert.Equal(t, "https://github.com/janesmith", info.GitHub)
	assert.Equal(t, "https://janesmith.dev/blog", info.Website)
}

func TestExtract_WebsiteExcludesProfileDomains(t *testing.T) {
	info := Extract("https://www.linkedin.com/in/jane-smith and https://github.com/janesmith")

	assert.NotEmpty(t, info.LinkedIn)
	assert.NotEmpty(t, info.GitHub)
	assert.Empty(t, info.Website)
}

func TestExtract_Location(t *testing.T) {
	info := Extract("Jane Smith\nSeattle, WA\njane@example.com")

	assert.Equal(t, "Seattle, WA", info.Location)
}

func TestExtract_LocationOnlyInLeadingLines(t *testing.T) {
	var lines string
	for i := 0; i < 12; i++ {
		lines += "filler line\n"
	}
	lines += "Portland, OR"

	info := Extract(lines)

	assert.Empty(t, info.Location)
}

func TestExtract_NothingFound(t *testing.T) {
	info := Extract("no contact details in this text at all")

	assert.Empty(t, info.Emails)
	assert.Empty(t, info.Phones)
	assert.Empty(t, info.LinkedIn)
	assert.Empty(t, info.GitHub)
	assert.Empty(t, info.Website)
	assert.Empty(t, info.Location)
}

func TestExtract_ShortNumberRejected(t *testing.T) {
	info := Extract("extension 123-4567")

	assert.Empty(t, info.Phones)
}
