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

package position

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/frankkopp/QuintGo/internal/types"
)

// FenError is returned when a fen string can not be parsed.
// Field names the offending fen field.
type FenError struct {
	Field string
	Msg   string
}

func (e *FenError) Error() string {
	return fmt.Sprintf("fen %s: %s", e.Field, e.Msg)
}

func fenError(field string, format string, a ...interface{}) *FenError {
	return &FenError{Field: field, Msg: fmt.Sprintf(format, a...)}
}

// setupFromFen sets up the position from a fen string with the six
// standard fields:
//  1. piece placement  2. side to move  3. castling rights
//  4. en passant target  5. half move clock  6. full move number
func (p *Position) setupFromFen(fen string) error {
	fields := strings.Split(strings.TrimSpace(fen), " ")
	if len(fields) != 6 {
		return fenError("fields", "want 6 got %d", len(fields))
	}

	if err := p.setupPieces(fields[0]); err != nil {
		return err
	}

	switch fields[1] {
	case "w":
		p.nextPlayer = White
	case "b":
		p.nextPlayer = Black
	default:
		return fenError("side to move", "want 'w'|'b' got %q", fields[1])
	}

	cr, err := castlingRightsFromFen(fields[2])
	if err != nil {
		return err
	}
	p.castlingRights = cr

	ep, err := enPassantTargetFromFen(fields[3])
	if err != nil {
		return err
	}
	p.enPassantSquare = ep

	halfMoveClock, err := strconv.Atoi(fields[4])
	if err != nil || halfMoveClock < 0 || halfMoveClock >= 50 {
		return fenError("half move clock", "want 0 <= x < 50 got %q", fields[4])
	}
	p.halfMoveClock = halfMoveClock

	moveNumber, err := strconv.Atoi(fields[5])
	if err != nil || moveNumber < 0 || moveNumber > 65_535 {
		return fenError("full move number", "want 0 <= x <= 65535 got %q", fields[5])
	}
	p.moveNumber = moveNumber

	return nil
}

func (p *Position) setupPieces(placement string) error {
	f := FileA
	r := Rank8
	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c >= '1' && c <= '8':
			f += File(c - '0')
		case c == '/':
			if r == Rank1 {
				return fenError("piece placement", "too many ranks: %q", placement)
			}
			f = FileA
			r--
		default:
			pt := PieceTypeFromChar(c | 0x20) // to lower case
			if pt == PtNone || f > FileH {
				return fenError("piece placement", "got %q, err at %d", placement, i)
			}
			color := Black
			if c < 'a' {
				color = White
			}
			p.putPieceNoKey(pt, color, MakeSquare(f, r))
			f++
		}
	}
	return nil
}

func castlingRightsFromFen(field string) (CastlingRights, error) {
	if field == "-" {
		return CastlingNone, nil
	}
	cr := CastlingNone
	for i := 0; i < len(field); i++ {
		var right CastlingRights
		switch field[i] {
		case 'K':
			right = CastlingWhiteOO
		case 'Q':
			right = CastlingWhiteOOO
		case 'k':
			right = CastlingBlackOO
		case 'q':
			right = CastlingBlackOOO
		default:
			return CastlingNone, fenError("castling rights", "got %q, err at idx %d", field, i)
		}
		if cr.Has(right) {
			return CastlingNone, fenError("castling rights", "duplicate %c in %q", field[i], field)
		}
		cr.Add(right)
	}
	return cr, nil
}

func enPassantTargetFromFen(field string) (Square, error) {
	if field == "-" {
		return SqNone, nil
	}
	sq := MakeSquareFromString(field)
	if sq == SqNone || (sq.RankOf() != Rank3 && sq.RankOf() != Rank6) {
		return SqNone, fenError("en passant target", "got %q", field)
	}
	return sq, nil
}

// StringFen returns the fen of the position with the castling rights
// in canonical KQkq order.
func (p *Position) StringFen() string {
	var sb strings.Builder

	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pt, c := p.PieceOn(MakeSquare(f, r))
			if pt == PtNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			if c == White {
				sb.WriteByte(pt.Char() - 'a' + 'A')
			} else {
				sb.WriteByte(pt.Char())
			}
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r == Rank1 {
			break
		}
		sb.WriteByte('/')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.nextPlayer.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.enPassantSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.moveNumber))

	return sb.String()
}
