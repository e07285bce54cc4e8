package billverify

import (
	"sort"
	"strings"
)

// ReconstructBlocks groups lines into ItemBlocks by y-clustering within a
// page when the OCR engine did not supply pre-grouped item_blocks, per §6.
// Lines within threshold y-units of each other on the same page are merged
// into a single block; the merged text's columns are its whitespace tokens.
func ReconstructBlocks(lines []Line, threshold float64) []ItemBlock {
	byPage := map[int][]Line{}
	for _, l := range lines {
		byPage[l.Page] = append(byPage[l.Page], l)
	}

	var blocks []ItemBlock
	pages := make([]int, 0, len(byPage))
	for p := range byPage {
		pages = append(pages, p)
	}
	sort.Ints(pages)

	for _, page := range pages {
		pageLines := byPage[page]
		sort.Slice(pageLines, func(i, j int) bool { return pageLines[i].Y() < pageLines[j].Y() })

		var clusterLines []Line
		flush := func() {
			if len(clusterLines) == 0 {
				return
			}
			var texts []string
			for _, l := range clusterLines {
				texts = append(texts, strings.TrimSpace(l.Text))
			}
			joined := strings.Join(texts, " ")
			blocks = append(blocks, ItemBlock{
				Text:    joined,
				Columns: strings.Fields(joined),
				Page:    page,
				Y:       clusterLines[0].Y(),
			})
			clusterLines = nil
		}

		lastY := -1.0
		for _, l := range pageLines {
			if len(clusterLines) > 0 && l.Y()-lastY > threshold {
				flush()
			}
			clusterLines = append(clusterLines, l)
			lastY = l.Y()
		}
		flush()
	}
	return blocks
}
