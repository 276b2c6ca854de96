package compoundfile

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat reports byte content that violates the expected structure:
	// truncated header, sector id pointing outside the container, malformed
	// entry data.
	ErrFormat = errors.New("malformed cfb file")

	// ErrNotCompoundFile reports input that is not a compound file at all
	// (missing magic number or shorter than the fixed header).
	ErrNotCompoundFile = fmt.Errorf("not a compound file: %w", ErrFormat)

	// ErrUnknownSentinel reports a negative sector id outside the four
	// reserved sentinel values.
	ErrUnknownSentinel = fmt.Errorf("unknown sentinel sector id: %w", ErrFormat)

	// ErrConsistency reports two independently derived quantities that
	// disagree, such as the DIFAT-derived FAT sector count vs the count
	// declared in the header.
	ErrConsistency = errors.New("inconsistent cfb file")

	// ErrChainLoop reports a sector chain that exceeded the maximum
	// plausible sector count, indicating a cycle or an unterminated chain.
	ErrChainLoop = errors.New("sector chain does not terminate")
)
