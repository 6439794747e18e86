package fold

import (
	apperrors "github.com/shhac/foldingcell/internal/errors"
)

// Partition splits contentHeight into the panel heights used by one fold
// run. The first two panels are always titleHeight tall so the first flip
// reveals exactly the title area. The space left over is divided into
// additionalFlips panels, or into title-sized panels plus a trailing
// remainder panel when additionalFlips is zero.
//
// With an explicit flip count the division remainder is added to the first
// extra panel only; it is never spread across panels.
func Partition(titleHeight, contentHeight, additionalFlips int) ([]int, error) {
	geomErr := func(reason string) error {
		return apperrors.GeometryError{
			Title:   titleHeight,
			Content: contentHeight,
			Flips:   additionalFlips,
			Reason:  reason,
		}
	}

	if titleHeight <= 0 {
		return nil, geomErr("title height must be positive")
	}
	if additionalFlips < 0 {
		return nil, geomErr("additional flips must not be negative")
	}

	extra := contentHeight - titleHeight*2
	if extra < 0 {
		return nil, geomErr("content is shorter than two title heights")
	}

	heights := []int{titleHeight, titleHeight}
	if extra == 0 {
		return heights, nil
	}

	if additionalFlips > 0 {
		each := extra / additionalFlips
		remainder := extra % additionalFlips
		if each == 0 {
			return nil, geomErr("additional flips count is too large for the remaining space")
		}
		if each+remainder > titleHeight {
			return nil, geomErr("additional flips count is too small")
		}
		for i := 0; i < additionalFlips; i++ {
			h := each
			if i == 0 {
				h += remainder
			}
			heights = append(heights, h)
		}
		return heights, nil
	}

	for i := 0; i < extra/titleHeight; i++ {
		heights = append(heights, titleHeight)
	}
	if rest := extra % titleHeight; rest > 0 {
		heights = append(heights, rest)
	}
	return heights, nil
}
