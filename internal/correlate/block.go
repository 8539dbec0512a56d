package correlate

import (
	"fmt"
	"strings"

	"srtdiff/internal/transcript"
)

// Block line prefixes. Side 1 blocks are flush left; side 2 blocks are
// indented so the two transcripts read as columns.
const (
	side1BlockPrefix = ">"
	side2BlockPrefix = "<"
)

// BlockLines renders a segment block in the mnemonic line format, framed by
// blank lines.
func BlockLines(b *Block, side2Indent int) []string {
	seg := b.Segment
	lead := side1BlockPrefix
	if b.Side == transcript.Side2 {
		lead = side2BlockPrefix + strings.Repeat(" ", side2Indent)
	}
	return []string{
		"",
		fmt.Sprintf("%s I %d", lead, seg.Index),
		fmt.Sprintf("%s T %s --> %s", lead, seg.BeginLabel, seg.EndLabel),
		fmt.Sprintf("%s R %d %d %d", lead, seg.BeginMs, seg.EndMs, seg.DurationMs),
		fmt.Sprintf("%s S %s", lead, seg.Text),
		"",
	}
}

// blockSummary is the single line form used by the table renderer.
func blockSummary(b *Block) string {
	seg := b.Segment
	lead := side1BlockPrefix
	if b.Side == transcript.Side2 {
		lead = side2BlockPrefix
	}
	return fmt.Sprintf("%s #%d %s --> %s  %s", lead, seg.Index, seg.BeginLabel, seg.EndLabel, seg.Text)
}
