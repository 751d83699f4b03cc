/*
 * QuintGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package position represents the chess board and its state.
// It uses bitboards for the piece placement of both sides, an
// incrementally updated zobrist key for the transposition table and
// a key history for draw detection by repetition.
// Create a new instance with NewPosition(...) with no parameters to
// get the chess start position.
package position

import (
	"strings"

	. "github.com/frankkopp/QuintGo/internal/types"
)

// StartFen is a string with the fen position for a standard chess game
const StartFen string = GameStartFen

// Position represents the chess board and its state.
//
// Invariants kept up after every DoMove/UndoMove:
//  - occupiedBb[c] is the union of piecesBb[c][pt] over all piece types
//  - the occupancies of both colors are disjoint
//  - every side has exactly one king
//  - no pawn is on rank 1 or rank 8
//  - zobristKey matches a full recomputation from pieces and state
type Position struct {
	// piece placement
	piecesBb   [ColorLength][PtLength]Bitboard
	occupiedBb [ColorLength]Bitboard

	// game state
	nextPlayer      Color
	castlingRights  CastlingRights
	enPassantSquare Square // SqNone when no en passant capture is possible
	halfMoveClock   int
	moveNumber      int

	// zobrist key of the current position - updated incrementally
	zobristKey Key

	// key of the position this instance was created from and the keys
	// after every committed move - used for repetition detection
	initialKey Key
	keyHistory []Key
}

// UnmakeInfo is the state captured by DoMove which UndoMove needs to
// restore the previous position.
type UnmakeInfo struct {
	MovedPiece      PieceType
	CapturedPiece   PieceType // PtNone when the move was no capture
	CapturedSquare  Square    // differs from the to square on en passant
	CastlingRights  CastlingRights
	EnPassantSquare Square
	HalfMoveClock   int
	ZobristKey      Key
}

// NewPosition creates a new position.
// When called without an argument the position will have the start
// position. When a fen string is given it will create a position
// based on this fen. Additional fens/strings are ignored.
// Panics on an invalid fen - use NewPositionFen when the fen comes
// from an untrusted source.
func NewPosition(fen ...string) *Position {
	if len(fen) == 0 {
		p, _ := NewPositionFen(StartFen)
		return p
	}
	p, err := NewPositionFen(fen[0])
	if err != nil {
		panic(err)
	}
	return p
}

// NewPositionFen creates a new position with the given fen string
// as board position.
// It returns nil and an error if the fen was invalid.
func NewPositionFen(fen string) (*Position, error) {
	p := &Position{}
	if err := p.setupFromFen(fen); err != nil {
		return nil, err
	}
	p.zobristKey = p.computeZobristKey()
	p.initialKey = p.zobristKey
	p.keyHistory = make([]Key, 0, 64)
	return p, nil
}

// //////////////////////////////////////////////////////
// // Accessors
// //////////////////////////////////////////////////////

// NextPlayer returns the side to move
func (p *Position) NextPlayer() Color {
	return p.nextPlayer
}

// PiecesBb returns the bitboard of all pieces of the given color
// and piece type
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[c][pt]
}

// OccupiedBb returns the bitboard of all pieces of the given color
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.occupiedBb[c]
}

// OccupiedAll returns the bitboard of all pieces of both colors
func (p *Position) OccupiedAll() Bitboard {
	return p.occupiedBb[White] | p.occupiedBb[Black]
}

// KingSquare returns the square of the king of the given color
func (p *Position) KingSquare(c Color) Square {
	return p.piecesBb[c][King].Lsb()
}

// CastlingRights returns the castling state of the position
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// EnPassantSquare returns the en passant target square or SqNone
func (p *Position) EnPassantSquare() Square {
	return p.enPassantSquare
}

// HalfMoveClock returns the number of half moves since the last pawn
// move or capture
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// MoveNumber returns the full move counter of the game
func (p *Position) MoveNumber() int {
	return p.moveNumber
}

// ZobristKey returns the zobrist key of the position
func (p *Position) ZobristKey() Key {
	return p.zobristKey
}

// PieceOn returns the piece type and color of the piece on the given
// square. Returns PtNone (and White) for an empty square.
func (p *Position) PieceOn(sq Square) (PieceType, Color) {
	bb := sq.Bb()
	for c := White; c <= Black; c++ {
		if p.occupiedBb[c]&bb == 0 {
			continue
		}
		for pt := Pawn; pt <= King; pt++ {
			if p.piecesBb[c][pt]&bb != 0 {
				return pt, c
			}
		}
	}
	return PtNone, White
}

// IsCapture determines from the position if a move is a capture -
// either the to square is occupied by the opponent or it is an
// en passant capture.
func (p *Position) IsCapture(m Move) bool {
	if p.occupiedBb[p.nextPlayer.Flip()].Has(m.To()) {
		return true
	}
	moved, _ := p.PieceOn(m.From())
	return moved == Pawn && m.To() == p.enPassantSquare && p.enPassantSquare != SqNone
}

// //////////////////////////////////////////////////////
// // Move execution
// //////////////////////////////////////////////////////

// DoMove commits a move to the board. Due to performance there is no
// check if this move is legal on the current position. Usually the
// move will be generated by the move generator and is legal anyway.
// Returns the UnmakeInfo UndoMove needs to restore the position.
func (p *Position) DoMove(m Move) UnmakeInfo {
	us := p.nextPlayer
	them := us.Flip()
	from, to := m.From(), m.To()
	moved, _ := p.PieceOn(from)

	u := UnmakeInfo{
		MovedPiece:      moved,
		CapturedPiece:   PtNone,
		CapturedSquare:  SqNone,
		CastlingRights:  p.castlingRights,
		EnPassantSquare: p.enPassantSquare,
		HalfMoveClock:   p.halfMoveClock,
		ZobristKey:      p.zobristKey,
	}

	// determine capture incl. en passant
	if captured, capColor := p.PieceOn(to); captured != PtNone && capColor == them {
		u.CapturedPiece = captured
		u.CapturedSquare = to
	} else if moved == Pawn && to == p.enPassantSquare && p.enPassantSquare != SqNone {
		u.CapturedPiece = Pawn
		u.CapturedSquare = to.To(them.MoveDirection())
	}

	// half move clock resets on pawn moves and captures
	if moved == Pawn || u.CapturedPiece != PtNone {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	// remove the captured piece
	if u.CapturedPiece != PtNone {
		p.removePiece(u.CapturedPiece, them, u.CapturedSquare)
	}

	// new en passant target after a double pawn push
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobristEpFile[p.enPassantSquare.FileOf()]
		p.enPassantSquare = SqNone
	}
	if moved == Pawn && SquareDistance(from, to) == 2 && from.FileOf() == to.FileOf() {
		p.enPassantSquare = from.To(us.MoveDirection())
		p.zobristKey ^= zobristEpFile[p.enPassantSquare.FileOf()]
	}

	// castling - also move the rook
	if moved == King {
		if SquareDistance(from, to) == 2 {
			rookFrom, rookTo := rookCastlingSquares(to)
			p.movePiece(Rook, us, rookFrom, rookTo)
		}
		p.clearCastlingRights(CastlingRightsOf(us))
	}

	// a rook moving from or being captured on its home square
	// removes the single right
	if moved == Rook {
		p.clearCastlingRights(castlingRightForRookSquare(from))
	}
	if u.CapturedPiece == Rook {
		p.clearCastlingRights(castlingRightForRookSquare(u.CapturedSquare))
	}

	// move the piece - promotions exchange the pawn
	if m.IsPromotion() {
		p.removePiece(Pawn, us, from)
		p.putPiece(m.PromotionType(), us, to)
	} else {
		p.movePiece(moved, us, from, to)
	}

	// flip side to move
	p.zobristKey ^= zobristBlackToMove
	p.nextPlayer = them
	if us == Black {
		p.moveNumber++
	}

	p.keyHistory = append(p.keyHistory, p.zobristKey)
	return u
}

// UndoMove resets the position to the state before the given move,
// which must be the last move committed with DoMove, using the
// UnmakeInfo DoMove returned.
func (p *Position) UndoMove(m Move, u UnmakeInfo) {
	p.keyHistory = p.keyHistory[:len(p.keyHistory)-1]

	us := p.nextPlayer.Flip() // the side which made the move
	them := p.nextPlayer
	from, to := m.From(), m.To()

	p.nextPlayer = us
	if us == Black {
		p.moveNumber--
	}

	// undo the piece movement
	if m.IsPromotion() {
		p.removePieceNoKey(m.PromotionType(), us, to)
		p.putPieceNoKey(Pawn, us, from)
	} else {
		p.movePieceNoKey(u.MovedPiece, us, to, from)
	}
	if u.MovedPiece == King && SquareDistance(from, to) == 2 {
		rookFrom, rookTo := rookCastlingSquares(to)
		p.movePieceNoKey(Rook, us, rookTo, rookFrom)
	}
	if u.CapturedPiece != PtNone {
		p.putPieceNoKey(u.CapturedPiece, them, u.CapturedSquare)
	}

	// restore state
	p.castlingRights = u.CastlingRights
	p.enPassantSquare = u.EnPassantSquare
	p.halfMoveClock = u.HalfMoveClock
	p.zobristKey = u.ZobristKey
}

// DoNullMove flips the side to move and clears the en passant target.
// Used by null move pruning. Returns the prior en passant square
// needed by UndoNullMove.
func (p *Position) DoNullMove() Square {
	ep := p.enPassantSquare
	if ep != SqNone {
		p.zobristKey ^= zobristEpFile[ep.FileOf()]
		p.enPassantSquare = SqNone
	}
	p.zobristKey ^= zobristBlackToMove
	p.nextPlayer = p.nextPlayer.Flip()
	p.keyHistory = append(p.keyHistory, p.zobristKey)
	return ep
}

// UndoNullMove restores the state of the position to before the
// DoNullMove() call.
func (p *Position) UndoNullMove(ep Square) {
	p.keyHistory = p.keyHistory[:len(p.keyHistory)-1]
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobristBlackToMove
	if ep != SqNone {
		p.enPassantSquare = ep
		p.zobristKey ^= zobristEpFile[ep.FileOf()]
	}
}

// CopyWithout returns a copy of the position with the piece on the
// given square removed. Used by the move generator to test en passant
// legality. The copy shares no mutable state with the original.
func (p *Position) CopyWithout(sq Square) *Position {
	c := *p
	c.keyHistory = nil
	if pt, color := c.PieceOn(sq); pt != PtNone {
		c.removePiece(pt, color, sq)
	}
	return &c
}

// //////////////////////////////////////////////////////
// // Draw detection
// //////////////////////////////////////////////////////

// CheckRepetitions returns true if the current position occurred at
// least n times in the game history (counting the current occurrence).
func (p *Position) CheckRepetitions(n int) bool {
	count := 0
	if p.zobristKey == p.initialKey {
		count++
	}
	for _, k := range p.keyHistory {
		if k == p.zobristKey {
			count++
			if count >= n {
				return true
			}
		}
	}
	return count >= n
}

// IsRepetitionPossible returns true if the current position already
// occurred before in the game history. Such positions must not be
// resolved from the transposition table as the path to them matters
// for draw by repetition.
func (p *Position) IsRepetitionPossible() bool {
	return p.CheckRepetitions(2)
}

// HasInsufficientMaterial returns true if neither side has enough
// material to deliver checkmate:
// K vs K, K+minor vs K and K+B vs K+B with same colored bishops.
func (p *Position) HasInsufficientMaterial() bool {
	for _, pt := range []PieceType{Pawn, Rook, Queen} {
		if p.piecesBb[White][pt] != 0 || p.piecesBb[Black][pt] != 0 {
			return false
		}
	}
	knights := p.piecesBb[White][Knight] | p.piecesBb[Black][Knight]
	bishopsW := p.piecesBb[White][Bishop]
	bishopsB := p.piecesBb[Black][Bishop]
	minors := knights.PopCount() + bishopsW.PopCount() + bishopsB.PopCount()
	if minors <= 1 {
		return true
	}
	// K+B vs K+B with both bishops on the same square color
	if knights == 0 && bishopsW.PopCount() == 1 && bishopsB.PopCount() == 1 {
		return squareColor(bishopsW.Lsb()) == squareColor(bishopsB.Lsb())
	}
	return false
}

// IsDraw returns true if the position is drawn by the fifty move
// rule, threefold repetition or insufficient material.
func (p *Position) IsDraw() bool {
	return p.halfMoveClock >= 50 || p.CheckRepetitions(3) || p.HasInsufficientMaterial()
}

// HasNonPawnMaterial returns true if the given side has at least one
// piece which is neither a pawn nor the king. Null move pruning is
// unsound in pure pawn endings (zugzwang).
func (p *Position) HasNonPawnMaterial(c Color) bool {
	return p.piecesBb[c][Knight]|p.piecesBb[c][Bishop]|p.piecesBb[c][Rook]|p.piecesBb[c][Queen] != 0
}

// //////////////////////////////////////////////////////
// // Internal board manipulation
// //////////////////////////////////////////////////////

func (p *Position) putPiece(pt PieceType, c Color, sq Square) {
	p.putPieceNoKey(pt, c, sq)
	p.zobristKey ^= zobristPiece(pt, c, sq)
}

func (p *Position) removePiece(pt PieceType, c Color, sq Square) {
	p.removePieceNoKey(pt, c, sq)
	p.zobristKey ^= zobristPiece(pt, c, sq)
}

func (p *Position) movePiece(pt PieceType, c Color, from Square, to Square) {
	p.movePieceNoKey(pt, c, from, to)
	p.zobristKey ^= zobristPiece(pt, c, from)
	p.zobristKey ^= zobristPiece(pt, c, to)
}

func (p *Position) putPieceNoKey(pt PieceType, c Color, sq Square) {
	p.piecesBb[c][pt].PushSquare(sq)
	p.occupiedBb[c].PushSquare(sq)
}

func (p *Position) removePieceNoKey(pt PieceType, c Color, sq Square) {
	p.piecesBb[c][pt].PopSquare(sq)
	p.occupiedBb[c].PopSquare(sq)
}

func (p *Position) movePieceNoKey(pt PieceType, c Color, from Square, to Square) {
	p.removePieceNoKey(pt, c, from)
	p.putPieceNoKey(pt, c, to)
}

func (p *Position) clearCastlingRights(rights CastlingRights) {
	for _, right := range []CastlingRights{CastlingWhiteOO, CastlingWhiteOOO, CastlingBlackOO, CastlingBlackOOO} {
		if rights.Has(right) && p.castlingRights.Has(right) {
			p.castlingRights.Remove(right)
			p.zobristKey ^= zobristCastlingRight(right)
		}
	}
}

// rookCastlingSquares returns the from and to square of the rook for
// the castling move given by the king's to square
func rookCastlingSquares(kingTo Square) (Square, Square) {
	switch kingTo {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	}
	panic("rookCastlingSquares: not a castling target square")
}

// castlingRightForRookSquare returns the castling right bound to a
// rook home square, CastlingNone for any other square
func castlingRightForRookSquare(sq Square) CastlingRights {
	switch sq {
	case SqA1:
		return CastlingWhiteOOO
	case SqH1:
		return CastlingWhiteOO
	case SqA8:
		return CastlingBlackOOO
	case SqH8:
		return CastlingBlackOO
	}
	return CastlingNone
}

func squareColor(sq Square) int {
	return (int(sq.RankOf()) + int(sq.FileOf())) & 1
}

// StringBoard returns a visual representation of the board for
// debugging
func (p *Position) StringBoard() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			pt, c := p.PieceOn(MakeSquare(f, r))
			switch {
			case pt == PtNone:
				sb.WriteByte('.')
			case c == White:
				sb.WriteByte(pt.Char() - 'a' + 'A')
			default:
				sb.WriteByte(pt.Char())
			}
		}
		if r == Rank1 {
			break
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String returns the fen of the position
func (p *Position) String() string {
	return p.StringFen()
}
