package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-referee-go/internal/chess"
)

// bySquare compares grids as occupied square name to piece, so a diff
// names the squares that differ instead of row and column indexes.
var bySquare = cmp.Transformer("BySquare", func(g chess.Grid) map[string]chess.Piece {
	occupied := make(map[string]chess.Piece)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if p := g[row][col]; !p.IsEmpty() {
				occupied[chess.Sq(row, col).String()] = p
			}
		}
	}
	return occupied
})

// IgnoreHasMoved compares pieces by kind, colour and square only.
var IgnoreHasMoved = cmpopts.IgnoreFields(chess.Piece{}, "HasMoved")

// PositionDiff returns a square-by-square diff of two positions, empty when
// they match. want and got may be chess.Grid, chess.BoardState or
// *chess.Board values of the same type.
func PositionDiff(want, got interface{}, opts ...cmp.Option) string {
	return cmp.Diff(want, got, append([]cmp.Option{bySquare}, opts...)...)
}

// AssertPosition fails if got and want hold different positions.
func AssertPosition(t *testing.T, got, want interface{}, opts ...cmp.Option) {
	t.Helper()
	if diff := PositionDiff(want, got, opts...); diff != "" {
		t.Errorf("position mismatch (-want +got):\n%s", diff)
	}
}
