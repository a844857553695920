// Package extract replays PGN games and records every visited position
// as one FEN string per line.
package extract

import (
	"bufio"
	"fmt"
	"io"

	chess "github.com/corentings/chess/v2"
	"go.uber.org/zap"

	"github.com/park285/pgn2epd/internal/obslog"
)

// Result counts what one source contributed. Positions is the number of
// lines written: per parsed game, one per move plus one for the starting
// position when that is included.
type Result struct {
	Games     int
	Positions int
}

// Extract parses every game in r and writes the FEN of each visited
// position to w, in game order and move order. When includeStart is true
// each game's starting position (the standard opening position, or the
// record's FEN tag) is written before its moves. The first scan, parse or
// write error aborts the source; partial counts are still returned.
func Extract(r io.Reader, w io.Writer, includeStart bool) (Result, error) {
	var res Result
	bw := bufio.NewWriter(w)

	scanner := chess.NewScanner(r)
	for scanner.HasNext() {
		scanned, err := scanner.ScanGame()
		if err != nil {
			return res, fmt.Errorf("scan game %d: %w", res.Games+1, err)
		}
		tokens, err := chess.TokenizeGame(scanned)
		if err != nil {
			return res, fmt.Errorf("tokenize game %d: %w", res.Games+1, err)
		}
		game, err := chess.NewParser(tokens).Parse()
		if err != nil {
			return res, fmt.Errorf("parse game %d: %w", res.Games+1, err)
		}
		res.Games++
		obslog.L().Debug("processing game", zap.Int("game", res.Games))

		// Positions() yields the root position first, then the position
		// after each mainline move.
		positions := game.Positions()
		if !includeStart && len(positions) > 0 {
			positions = positions[1:]
		}
		for _, pos := range positions {
			if _, err := bw.WriteString(pos.String() + "\n"); err != nil {
				return res, fmt.Errorf("write position: %w", err)
			}
			res.Positions++
		}
	}

	if err := bw.Flush(); err != nil {
		return res, fmt.Errorf("flush output: %w", err)
	}
	return res, nil
}
