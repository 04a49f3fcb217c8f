package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meher4567/intellimatch-ai-resume-screening-sub002/internal/types"
)

var testRef = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestParseExperience_PipeSeparatedHeader(t *testing.T) {
	content := `Software Engineer | Acme Corp | 01/2020 - Present
- Built resume parsing services
- Led a team of three`

	entries := ParseExperienceAt(content, testRef)

	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "Software Engineer", entry.Title)
	assert.Equal(t, "Acme Corp", entry.Company)
	assert.Equal(t, "01/2020", entry.StartDate)
	assert.Equal(t, "Present", entry.EndDate)
	require.NotNil(t, entry.DurationMonths)
	assert.Equal(t, 77, *entry.DurationMonths) // Jan 2020 → Jun 2026
	assert.Contains(t, entry.Description, "Built resume parsing services")
	assert.Contains(t, entry.Description, "Led a team of three")
}

func TestParseExperience_AtSeparator(t *testing.T) {
	entries := ParseExperienceAt("Data Analyst at Beta Inc, Mar 2018 - Feb 2020", testRef)

	require.Len(t, entries, 1)
	assert.Equal(t, "Data Analyst", entries[0].Title)
	assert.Equal(t, "Beta Inc", entries[0].Company)
	require.NotNil(t, entries[0].DurationMonths)
	assert.Equal(t, 23, *entries[0].DurationMonths)
}

func TestParseExperience_MultipleEntries(t *testing.T) {
	content := `Senior Engineer | Acme Corp | 2022 - Present
- Shipped the matching engine

Engineer | Beta Inc | 2019 - 2022
- Maintained ingestion jobs`

	entries := ParseExperienceAt(content, testRef)

	require.Len(t, entries, 2)
	assert.Equal(t, "Acme Corp", entries[0].Company)
	assert.Equal(t, "Beta Inc", entries[1].Company)
	assert.Contains(t, entries[0].Description, "matching engine")
	assert.Contains(t, entries[1].Description, "ingestion jobs")
}

func TestParseExperience_SentinelsWhenLabelsMissing(t *testing.T) {
	entries := ParseExperienceAt("01/2020 - 06/2021", testRef)

	require.Len(t, entries, 1)
	assert.Equal(t, types.UnknownPosition, entries[0].Title)
	assert.Equal(t, types.UnknownCompany, entries[0].Company)
	require.NotNil(t, entries[0].DurationMonths)
	assert.Equal(t, 17, *entries[0].DurationMonths)
}

func TestParseExperience_SingleDateNoDuration(t *testing.T) {
	entries := ParseExperienceAt("Consultant | Gamma LLC | 2021", testRef)

	require.Len(t, entries, 1)
	assert.Equal(t, "2021", entries[0].StartDate)
	assert.Nil(t, entries[0].DurationMonths)
}

func TestParseExperience_BulletedDatesAreNotHeaders(t *testing.T) {
	content := `Engineer | Acme Corp | 2020 - 2022
- migrated the 2019 reporting stack`

	entries := ParseExperienceAt(content, testRef)

	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Description, "2019 reporting stack")
}

func TestParseExperience_Empty(t *testing.T) {
	assert.Empty(t, ParseExperienceAt("", testRef))
	assert.Empty(t, ParseExperienceAt("no dated lines here", testRef))
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		end    string
		want   int
		wantOK bool
	}{
		{"month over month", "01/2020", "07/2021", 18, true},
		{"month names", "Jan 2020", "Jan 2021", 12, true},
		{"bare years", "2019", "2022", 36, true},
		{"open ended", "01/2025", "Present", 17, true},
		{"reversed range", "2022", "2019", 0, false},
		{"garbage", "soon", "2020", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			months, ok := monthsBetween(tt.start, tt.end, testRef)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, months)
			}
		})
	}
}
