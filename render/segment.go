package render

import (
	"regexp"
	"strings"
)

type BlockType string

const (
	DisclaimerBlock BlockType = "disclaimer"
	HeadingBlock    BlockType = "heading"
	ListItemBlock   BlockType = "list_item"
	ParagraphBlock  BlockType = "paragraph"
)

// Block is one displayable unit of an analysis narrative.
type Block struct {
	Type BlockType `json:"type"`
	Text string    `json:"text"`
}

var disclaimerMarker = regexp.MustCompile(`(?i)disclaimer:`)

// Segment splits an analysis narrative into ordered display blocks. One
// line becomes one block; blank lines are dropped. A line carrying the
// "disclaimer:" marker becomes a disclaimer with the marker stripped, a
// line wrapped in ** on both ends becomes a heading, a line starting with
// "* " becomes a list item, and anything else is a paragraph.
func Segment(narrative string) []Block {
	lines := strings.Split(narrative, "\n")

	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		switch {
		case disclaimerMarker.MatchString(line):
			loc := disclaimerMarker.FindStringIndex(line)
			text := strings.TrimSpace(line[:loc[0]] + line[loc[1]:])
			blocks = append(blocks, Block{Type: DisclaimerBlock, Text: text})
		case strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**"):
			blocks = append(blocks, Block{Type: HeadingBlock, Text: strings.ReplaceAll(line, "**", "")})
		case strings.HasPrefix(line, "* "):
			blocks = append(blocks, Block{Type: ListItemBlock, Text: line[2:]})
		default:
			blocks = append(blocks, Block{Type: ParagraphBlock, Text: line})
		}
	}

	return blocks
}
