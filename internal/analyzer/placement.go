package analyzer

import "github.com/pagefold/pagefold/types"

// minImageSpacing is the smallest gap, in paragraphs, between two placed
// figures.
const minImageSpacing = 3

// PlanImagePlacements assigns every image a placement type and a target
// paragraph index:
//
//   - the first image is always the hero, placed before the body;
//   - consecutive portrait images are paired side by side;
//   - everything else is centered, spread evenly through the article.
//
// Target positions are clamped to the valid paragraph range. A paired
// placement appears once in the result, carrying its partner through a
// mutual PairWith link, so no image is ever dropped.
func PlanImagePlacements(images []types.Image, paragraphCount int) []*types.ImagePlacement {
	if len(images) == 0 {
		return nil
	}

	placements := make([]*types.ImagePlacement, 0, len(images))
	placements = append(placements, &types.ImagePlacement{
		Image:          &images[0],
		Type:           types.PlacementHero,
		ParagraphIndex: 0,
	})

	remaining := images[1:]
	spacing := minImageSpacing
	if paragraphCount > 0 && len(remaining) > 1 {
		if s := paragraphCount / (len(images) + 1); s > spacing {
			spacing = s
		}
	}

	idx := 0
	positionCounter := 1
	for idx < len(remaining) {
		position := clampPosition(positionCounter*spacing, paragraphCount)
		image := &remaining[idx]

		if !image.IsLandscape() && idx+1 < len(remaining) && !remaining[idx+1].IsLandscape() {
			placement := &types.ImagePlacement{
				Image:          image,
				Type:           types.PlacementPaired,
				ParagraphIndex: position,
			}
			partner := &types.ImagePlacement{
				Image:          &remaining[idx+1],
				Type:           types.PlacementPaired,
				ParagraphIndex: position,
			}
			placement.PairWith = partner
			partner.PairWith = placement
			placements = append(placements, placement)
			idx += 2
		} else {
			placements = append(placements, &types.ImagePlacement{
				Image:          image,
				Type:           types.PlacementCentered,
				ParagraphIndex: position,
			})
			idx++
		}
		positionCounter++
	}

	return placements
}

func clampPosition(position, paragraphCount int) int {
	if max := paragraphCount - 1; position > max {
		position = max
	}
	if position < 0 {
		return 0
	}
	return position
}
