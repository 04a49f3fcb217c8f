package jobparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePostingHTML = `<html>
<head><title>Careers</title><style>body { margin: 0; }</style></head>
<body>
<nav>Home | About | Careers</nav>
<h1>Frontend Engineer</h1>
<p>Acme Corp</p>
<h2>Requirements</h2>
<ul>
<li>3+ years of React experience</li>
<li>Strong CSS fundamentals</li>
</ul>
<script>trackPageView();</script>
<footer>Copyright Acme Corp</footer>
</body>
</html>`

func TestStripHTML_RemovesChrome(t *testing.T) {
	text, err := StripHTML(samplePostingHTML)
	require.NoError(t, err)

	assert.Contains(t, text, "Frontend Engineer")
	assert.Contains(t, text, "3+ years of React experience")
	assert.NotContains(t, text, "Home | About")
	assert.NotContains(t, text, "trackPageView")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "margin: 0")
}

func TestStripHTML_BlockElementsBreakLines(t *testing.T) {
	text, err := StripHTML("<div>First</div><div>Second</div>")
	require.NoError(t, err)

	assert.NotContains(t, text, "FirstSecond")
	assert.Contains(t, text, "First")
	assert.Contains(t, text, "Second")
}

func TestStripHTML_PlainTextPassthrough(t *testing.T) {
	text, err := StripHTML("just some text without markup")
	require.NoError(t, err)
	assert.Contains(t, text, "just some text without markup")
}

func TestStripHTML_FeedsParser(t *testing.T) {
	text, err := StripHTML(samplePostingHTML)
	require.NoError(t, err)

	job := NewParser().Parse(text)
	assert.Equal(t, "Frontend Engineer", job.Title)
	assert.Equal(t, "Acme Corp", job.Company)
	require.Len(t, job.RequiredSkills, 1)
	assert.Contains(t, job.RequiredSkills[0], "React")
	assert.Contains(t, job.ExperienceRequired, "3+ years")
}
