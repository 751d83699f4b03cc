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

// Package movegen contains the move generator of the engine. It
// generates strictly legal moves: the attacked-squares set keeps the
// king off checking rays, pin rays restrict pinned pieces to their
// line and the capture/push masks reduce move targets while in check.
package movegen

import (
	"github.com/frankkopp/QuintGo/internal/attacks"
	"github.com/frankkopp/QuintGo/internal/moveslice"
	"github.com/frankkopp/QuintGo/internal/position"
	. "github.com/frankkopp/QuintGo/internal/types"
)

// Movegen is a stateless move generator. A single instance can be
// shared as all state lives in the position it is called with.
type Movegen struct{}

// NewMovegen creates a new instance of a move generator
func NewMovegen() *Movegen {
	return &Movegen{}
}

// GenerateLegalMoves generates all legal moves of the position for
// the side to move into a fresh move list with capacity MaxMoves.
// Returns an empty list for positions with the half move clock at 50
// (the position is drawn, no continuations are offered).
func (mg *Movegen) GenerateLegalMoves(p *position.Position) *moveslice.MoveSlice {
	moves := moveslice.NewMoveSlice(MaxMoves)

	if p.HalfMoveClock() >= 50 {
		return moves
	}

	us := p.NextPlayer()
	them := us.Flip()
	friendly := p.OccupiedBb(us)
	opponents := p.OccupiedBb(them)
	occupancy := friendly | opponents
	kingSquare := p.KingSquare(us)

	checkers := mg.GenerateCheckers(p)
	numCheckers := checkers.PopCount()

	// with more than one checker only king moves can help
	if numCheckers > 1 {
		kingMoves := mg.genKingDestinations(p, us, kingSquare, occupancy) &^ friendly
		for kingMoves != 0 {
			moves.PushBack(CreateMove(kingSquare, kingMoves.PopLsb()))
		}
		return moves
	}

	// when in check non king moves must capture the checker or block
	// a checking slider
	captureMask := BbAll
	pushMask := BbAll
	if numCheckers == 1 {
		captureMask = checkers
		// a double pushed checking pawn may also be captured en passant
		if ep := p.EnPassantSquare(); ep != SqNone {
			if ep.To(them.MoveDirection()).Bb() == checkers {
				captureMask |= ep.Bb()
			}
		}
		checkerSquare := checkers.Lsb()
		checkerPiece, _ := p.PieceOn(checkerSquare)
		if checkerPiece.IsSlider() {
			pushMask = checkerSquare.Intermediate(kingSquare)
		} else {
			pushMask = BbZero
		}
	}

	rookPinRay, bishopPinRay := mg.pinRays(p, us)

	for pt := Pawn; pt <= King; pt++ {
		pieces := p.PiecesBb(us, pt)
		for pieces != 0 {
			from := pieces.PopLsb()

			var destinations Bitboard
			switch pt {
			case Knight:
				destinations = attacks.KnightAttacks(from)
			case King:
				destinations = mg.genKingDestinations(p, us, from, occupancy)
			case Bishop, Rook, Queen:
				destinations = attacks.SlidingAttacks(pt, from, occupancy)
			case Pawn:
				destinations = mg.genPawnDestinations(p, us, from, friendly, opponents)
			}

			destinations &^= friendly

			if pt != King {
				destinations &= captureMask | pushMask
			}

			// a pinned piece stays on its own pin line - intersecting
			// the pin ray union with the line through piece and king
			// keeps capturing the pinner legal but forbids crossing
			// over to another pin ray
			if rookPinRay.Has(from) {
				destinations &= rookPinRay & from.Line(kingSquare)
			}
			if bishopPinRay.Has(from) {
				destinations &= bishopPinRay & from.Line(kingSquare)
			}

			if pt == Pawn && from.RankOf() == promotionFromRank(us) {
				for destinations != 0 {
					to := destinations.PopLsb()
					moves.PushBack(CreatePromotionMove(from, to, Knight))
					moves.PushBack(CreatePromotionMove(from, to, Bishop))
					moves.PushBack(CreatePromotionMove(from, to, Rook))
					moves.PushBack(CreatePromotionMove(from, to, Queen))
				}
			} else {
				for destinations != 0 {
					moves.PushBack(CreateMove(from, destinations.PopLsb()))
				}
			}
		}
	}

	return moves
}

// GenerateCheckers returns the bitboard of all opponent pieces giving
// check to the king of the side to move. Attacks are cast from the
// king square into the opponent's pieces - for pawns the own pawn
// attack table from the king square finds the attacking pawns by
// symmetry.
func (mg *Movegen) GenerateCheckers(p *position.Position) Bitboard {
	us := p.NextPlayer()
	them := us.Flip()
	kingSquare := p.KingSquare(us)
	occupancy := p.OccupiedAll()

	checkers := attacks.KnightAttacks(kingSquare) & p.PiecesBb(them, Knight)
	checkers |= attacks.PawnAttacks(us, kingSquare) & p.PiecesBb(them, Pawn)
	checkers |= attacks.SlidingAttacks(Bishop, kingSquare, occupancy) & (p.PiecesBb(them, Bishop) | p.PiecesBb(them, Queen))
	checkers |= attacks.SlidingAttacks(Rook, kingSquare, occupancy) & (p.PiecesBb(them, Rook) | p.PiecesBb(them, Queen))
	return checkers
}

// AttackedSquares returns all squares attacked by the given side. The
// king of the other side is removed from the occupancy so the king
// can not escape along the ray of a checking slider.
func (mg *Movegen) AttackedSquares(p *position.Position, by Color) Bitboard {
	occupancy := p.OccupiedAll() &^ p.PiecesBb(by.Flip(), King)

	attacked := BbZero
	for pt := Pawn; pt <= King; pt++ {
		pieces := p.PiecesBb(by, pt)
		for pieces != 0 {
			from := pieces.PopLsb()
			switch pt {
			case Pawn:
				attacked |= attacks.PawnAttacks(by, from)
			case Knight:
				attacked |= attacks.KnightAttacks(from)
			case King:
				attacked |= attacks.KingAttacks(from)
			default:
				attacked |= attacks.SlidingAttacks(pt, from, occupancy)
			}
		}
	}
	return attacked
}

// GetMoveFromUci parses a move in UCI notation and matches it against
// the legal moves of the position. Returns MoveNone if the move is
// not legal.
func (mg *Movegen) GetMoveFromUci(p *position.Position, s string) Move {
	m := MoveFromUci(s)
	if m == MoveNone {
		return MoveNone
	}
	if mg.GenerateLegalMoves(p).Has(m) {
		return m
	}
	return MoveNone
}

// pinRays computes the rook and bishop pin rays for the given side.
// A pin ray spans from the king to an opponent slider (inclusive)
// with at most one friendly piece in between (a ray with none is the
// ray of a checking slider).
func (mg *Movegen) pinRays(p *position.Position, us Color) (Bitboard, Bitboard) {
	them := us.Flip()
	kingBb := p.PiecesBb(us, King)
	kingSquare := kingBb.Lsb()
	// ray cast only through the opponent's pieces - own pieces may be
	// the single pinned piece on the ray
	kingRayOccupancy := p.OccupiedBb(them)

	rookPinRay := mg.pinRay(p, us, kingSquare, kingBb, kingRayOccupancy, Rook,
		p.PiecesBb(them, Rook)|p.PiecesBb(them, Queen))
	bishopPinRay := mg.pinRay(p, us, kingSquare, kingBb, kingRayOccupancy, Bishop,
		p.PiecesBb(them, Bishop)|p.PiecesBb(them, Queen))
	return rookPinRay, bishopPinRay
}

func (mg *Movegen) pinRay(p *position.Position, us Color, kingSquare Square, kingBb Bitboard,
	kingRayOccupancy Bitboard, rayPiece PieceType, possiblePinners Bitboard) Bitboard {

	kingRay := attacks.SlidingAttacks(rayPiece, kingSquare, kingRayOccupancy)
	pinners := kingRay & possiblePinners

	ray := BbZero
	for pinners != 0 {
		pinnerSquare := pinners.PopLsb()
		// cast back from the pinner with only the king as blocker and
		// include capturing the pinner in the ray
		pinnerRay := attacks.SlidingAttacks(rayPiece, pinnerSquare, kingBb) | pinnerSquare.Bb()
		possiblePinRay := pinnerRay & kingRay
		// more than one friendly piece on the ray is no pin
		if (possiblePinRay & p.OccupiedBb(us)).PopCount() > 1 {
			continue
		}
		ray |= possiblePinRay
	}
	return ray
}

// genKingDestinations returns the king's pseudo destinations minus
// the squares attacked by the opponent, plus the legal castling
// target squares.
func (mg *Movegen) genKingDestinations(p *position.Position, us Color, kingSquare Square, occupancy Bitboard) Bitboard {
	dangerSquares := mg.AttackedSquares(p, us.Flip())
	destinations := attacks.KingAttacks(kingSquare) &^ dangerSquares

	// castling: king not in check, path empty, transit and target
	// squares not attacked, right still available
	if dangerSquares.Has(kingSquare) {
		return destinations
	}
	empty := func(sq Square) bool { return !occupancy.Has(sq) }
	safe := func(sq Square) bool { return !dangerSquares.Has(sq) }

	if us == White && kingSquare == SqE1 {
		if p.CastlingRights().Has(CastlingWhiteOO) &&
			empty(SqF1) && empty(SqG1) && safe(SqF1) && safe(SqG1) {
			destinations.PushSquare(SqG1)
		}
		if p.CastlingRights().Has(CastlingWhiteOOO) &&
			empty(SqD1) && empty(SqC1) && empty(SqB1) && safe(SqD1) && safe(SqC1) {
			destinations.PushSquare(SqC1)
		}
	}
	if us == Black && kingSquare == SqE8 {
		if p.CastlingRights().Has(CastlingBlackOO) &&
			empty(SqF8) && empty(SqG8) && safe(SqF8) && safe(SqG8) {
			destinations.PushSquare(SqG8)
		}
		if p.CastlingRights().Has(CastlingBlackOOO) &&
			empty(SqD8) && empty(SqC8) && empty(SqB8) && safe(SqD8) && safe(SqC8) {
			destinations.PushSquare(SqC8)
		}
	}
	return destinations
}

// genPawnDestinations returns the pseudo destinations of a single
// pawn: pushes not blocked by any piece and captures including a
// legal en passant capture.
func (mg *Movegen) genPawnDestinations(p *position.Position, us Color, from Square, friendly Bitboard, opponents Bitboard) Bitboard {
	pushes := attacks.PawnPushes(us, from)
	pushes &^= opponents

	// a blocked single push also blocks the double push: shift all
	// blockers (except the pawn itself) one step forward and subtract
	blockers := (friendly | opponents) &^ from.Bb()
	pushes &^= blockers.Shift(us.MoveDirection())

	possibleCaptures := opponents
	if ep := p.EnPassantSquare(); ep != SqNone {
		// removing both pawns of an en passant capture may expose the
		// king on the rank - test with the captured pawn removed
		if !mg.epDiscoversCheck(p, us, from, ep) {
			possibleCaptures |= ep.Bb()
		}
	}

	return pushes | (attacks.PawnAttacks(us, from) & possibleCaptures)
}

// epDiscoversCheck tests if capturing en passant would expose the own
// king to a rook or queen by recomputing the rook pin rays with the
// captured pawn removed from the board.
func (mg *Movegen) epDiscoversCheck(p *position.Position, us Color, from Square, ep Square) bool {
	capturedSquare := ep.To(us.Flip().MoveDirection())
	reduced := p.CopyWithout(capturedSquare)
	rookPinRay, _ := mg.pinRays(reduced, us)
	return rookPinRay.Has(from)
}

func promotionFromRank(c Color) Rank {
	if c == White {
		return Rank7
	}
	return Rank2
}
