// tables.go builds the offline-generated geometry/hash constants described
// in spec §4.1. They are pure functions of square geometry and are computed
// once, in init(), rather than checked in as generated data files — the spec
// treats both as equivalent ("may emit them from a small offline generator
// or at process start").
package corvus

import "math/rand/v2"

// relation bits used by sq2sq (spec §4.1). Ray-direction bits reuse the
// Direction bit positions (0..7); king-ring and knight-jump get the next
// two bits. Pawn-capture geometry is color-dependent, so (unlike the source
// engine) it is not packed into this color-agnostic table; togglePawnRing in
// attacks.go and the pawn checks in movegen.go compute it from the pawn's
// color directly.
const (
	relKingRing uint16 = 1 << 8
	relKnight   uint16 = 1 << 9
)

var (
	kingMask   [64]uint8    // which of the 8 directions stay on board from sq
	knightMask [64]uint8    // which of the 8 knight jumps stay on board from sq
	rayLen     [64][8]int   // distance to the edge from sq along direction index
	sq2sq      [64][64]uint16
	bishopDiag [64]uint32 // 2-bit (NE-SW, NW-SE) diagonal membership mask

	// zobrist[colorIdx*6+kindIdx-1][sq], kindIdx in King=1..Pawn=6.
	zobristKey [12][64]uint64

	// materialKeyAdd packs, per base piece class, a 4-bit counter nibble
	// (low 48 bits) and a 16-bit pseudo-random epsilon (high bits), so that
	// equal 64-bit sums imply the same multiset of pieces (spec §4.1/§3.3).
	materialKeyAdd [12]uint64
)

// classIndex maps a (color, kind) pair to 0..11 for the zobrist/material
// tables (King,Queen,Rook,Bishop,Knight,Pawn per color).
func classIndex(c Color, k Kind) int {
	var ki int
	switch k {
	case KindKing:
		ki = 0
	case KindQueen:
		ki = 1
	case KindRook:
		ki = 2
	case KindBishop:
		ki = 3
	case KindKnight:
		ki = 4
	case KindPawn:
		ki = 5
	default:
		panic(&internalError{"classIndex: impossible kind"})
	}
	return int(c)*6 + ki
}

func inBounds(file, rank int) bool { return file >= 0 && file < 8 && rank >= 0 && rank < 8 }

func init() {
	initGeometryTables()
	initHashTables()
	initCuckooTables()
}

func initGeometryTables() {
	for sq := 0; sq < 64; sq++ {
		f, r := Square(sq).File(), Square(sq).Rank()

		for d := 0; d < 8; d++ {
			df, dr := dirFileRankDelta[d][0], dirFileRankDelta[d][1]
			if inBounds(f+df, r+dr) {
				kingMask[sq] |= 1 << d
			}
			// Ray length: distance to the edge walking direction d.
			dist := 0
			nf, nr := f, r
			for {
				nf += df
				nr += dr
				if !inBounds(nf, nr) {
					break
				}
				dist++
			}
			rayLen[sq][d] = dist
		}

		for j := 0; j < 8; j++ {
			df, dr := knightDelta[j][0], knightDelta[j][1]
			if inBounds(f+df, r+dr) {
				knightMask[sq] |= 1 << j
			}
		}

		neDiag := f - r + 7   // 0..14
		nwDiag := f + r       // 0..14
		bishopDiag[sq] = 1<<uint(neDiag) | 1<<uint(15+nwDiag)
	}

	for from := 0; from < 64; from++ {
		ff, fr := Square(from).File(), Square(from).Rank()
		for d := 0; d < 8; d++ {
			df, dr := dirFileRankDelta[d][0], dirFileRankDelta[d][1]
			nf, nr := ff, fr
			for step := 0; step < rayLen[from][d]; step++ {
				nf += df
				nr += dr
				to := nf*8 + nr
				sq2sq[from][to] |= 1 << d
			}
		}
		for d := 0; d < 8; d++ {
			if kingMask[from]&(1<<d) == 0 {
				continue
			}
			df, dr := dirFileRankDelta[d][0], dirFileRankDelta[d][1]
			to := (ff+df)*8 + (fr + dr)
			sq2sq[from][to] |= relKingRing
		}
		for j := 0; j < 8; j++ {
			if knightMask[from]&(1<<j) == 0 {
				continue
			}
			df, dr := knightDelta[j][0], knightDelta[j][1]
			to := (ff+df)*8 + (fr + dr)
			sq2sq[from][to] |= relKnight
		}
	}
}

func initHashTables() {
	rnd := rand.New(rand.NewPCG(0x636f727675732121, 0x626f6172642d676e)) // fixed seed: deterministic hashes across runs
	for c := 0; c < 12; c++ {
		for sq := 0; sq < 64; sq++ {
			zobristKey[c][sq] = rnd.Uint64()
		}
		materialKeyAdd[c] = uint64(1)<<(4*c) | (rnd.Uint64()&0xFFFF)<<48
	}
}

// pieceZobrist returns the zobrist random for p standing on sq. A castling
// -capable rook is aliased to that side's pawn-class random rather than its
// own rook-class one, so retagging it to a plain rook (losing the right)
// XORs cleanly against the same key it was hashed in with — the source
// engine's trick (spec §4.1/§9 design notes), kept rather than replaced with
// a separate rights table. Every other tag maps to its base (color, kind).
func pieceZobrist(p Piece, sq Square) uint64 {
	if p.Kind() == KindRook && p.CanCastle() {
		return zobristKey[classIndex(p.Color(), KindPawn)][sq]
	}
	return zobristKey[classIndex(p.Color(), p.Kind())][sq]
}

func materialAdd(p Piece) uint64 { return materialKeyAdd[classIndex(p.Color(), p.Kind())] }
