package playerreport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSections(t *testing.T) {
	attrs := PlayerAttributes{}
	attrs.Character.Teamwork = 8
	attrs.Tactics.Communication = 3

	sections := attrs.Sections()
	require.Len(t, sections, 5)

	titles := make([]string, 0, len(sections))
	for _, s := range sections {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"Charaktereigenschaften", "Technik", "Athletik", "Mentalität", "Taktik"}, titles)

	assert.Len(t, sections[0].Items, 11)
	assert.Len(t, sections[1].Items, 10)
	assert.Len(t, sections[2].Items, 11)
	assert.Len(t, sections[3].Items, 4)
	assert.Len(t, sections[4].Items, 15)

	assert.Equal(t, AttributeItem{Label: "Teamfähigkeit", Value: 8}, sections[0].Items[0])
	assert.Equal(t, 3, sections[4].Items[13].Value, "Kommunikation")
	assert.Zero(t, sections[1].Items[0].Value, "unset ratings stay zero")
}
