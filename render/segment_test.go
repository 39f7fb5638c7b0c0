package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	narrative := "DISCLAIMER: This is not a medical diagnosis.\n" +
		"\n" +
		"**Potential Areas of Concern**\n" +
		"* Seasonal allergies\n" +
		"* Common cold\n" +
		"If symptoms persist, see a doctor."

	blocks := Segment(narrative)

	assert.Equal(t, []Block{
		{Type: DisclaimerBlock, Text: "This is not a medical diagnosis."},
		{Type: HeadingBlock, Text: "Potential Areas of Concern"},
		{Type: ListItemBlock, Text: "Seasonal allergies"},
		{Type: ListItemBlock, Text: "Common cold"},
		{Type: ParagraphBlock, Text: "If symptoms persist, see a doctor."},
	}, blocks)
}

func TestSegmentDisclaimerMarkerCaseInsensitive(t *testing.T) {
	blocks := Segment("Disclaimer: consult a professional.")

	assert.Len(t, blocks, 1)
	assert.Equal(t, DisclaimerBlock, blocks[0].Type)
	assert.Equal(t, "consult a professional.", blocks[0].Text)
}

func TestSegmentStripsOnlyFirstMarker(t *testing.T) {
	blocks := Segment("DISCLAIMER: read the disclaimer: twice")

	assert.Len(t, blocks, 1)
	assert.Equal(t, "read the disclaimer: twice", blocks[0].Text)
}

func TestSegmentEmptyNarrative(t *testing.T) {
	assert.Empty(t, Segment(""))
	assert.Empty(t, Segment("\n\n  \n"))
}

func TestSegmentBareAsteriskLineIsParagraph(t *testing.T) {
	blocks := Segment("*emphasis* but not a list item")

	assert.Len(t, blocks, 1)
	assert.Equal(t, ParagraphBlock, blocks[0].Type)
}
