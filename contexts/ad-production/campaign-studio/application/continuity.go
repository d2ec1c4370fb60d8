package application

import (
	"context"

	"adforge/contexts/ad-production/campaign-studio/domain/entities"
	"adforge/contexts/ad-production/campaign-studio/ports"
)

// ResolveContinuityReference finds the image a new slot's generation should
// reference so that consecutive keyframes read as one continuous sequence.
// For position start that is the selected end frame of the previous section;
// for middle/end it is the selected previous position of the same section.
// The very first slot of the sequence has no reference and returns empty.
func ResolveContinuityReference(
	ctx context.Context,
	keyframes ports.KeyframeRepository,
	campaignID string,
	section entities.Section,
	position entities.Position,
) (string, error) {
	prevSection, prevPosition, ok := entities.PreviousSlot(section, position)
	if !ok {
		return "", nil
	}
	selected, found, err := keyframes.GetSelectedKeyframe(ctx, campaignID, prevSection, prevPosition)
	if err != nil {
		return "", err
	}
	if !found {
		return "", nil
	}
	return selected.ImageURL, nil
}
