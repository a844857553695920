package extract

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/park285/pgn2epd/internal/discover"
	"github.com/park285/pgn2epd/internal/obslog"
)

// ConvertFile runs one conversion job: job.Input is replayed and the FEN
// of every visited position is written to job.Output, one per line. Both
// files are scoped to this call. The output file is only created once the
// input has been opened, so a missing input leaves no empty artifact.
func ConvertFile(job discover.Job, includeStart bool) (Result, error) {
	in, err := os.Open(job.Input)
	if err != nil {
		return Result{}, fmt.Errorf("open %s: %w", job.Input, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(job.Output)
	if err != nil {
		return Result{}, fmt.Errorf("create %s: %w", job.Output, err)
	}
	defer func() { _ = out.Close() }()

	res, err := Extract(in, out, includeStart)
	if err != nil {
		return res, fmt.Errorf("convert %s: %w", job.Input, err)
	}
	obslog.L().Debug("job converted",
		zap.String("input", job.Input),
		zap.String("output", job.Output),
		zap.Int("games", res.Games),
		zap.Int("positions", res.Positions))
	return res, nil
}
