//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.


package attacks

import . "github.com/kschaper/bitchess/internal/types"

// Magic multiplier constants and shift amounts for rooks and bishops, per
//. Hard coded rather than searched for at start-up so the engine boots deterministically.
var rookMagics = [SqLength]uint64{
	1188968168698150945, 2359903802296901633, 108103985927323658, 11709376623483715588,
	144119594712834064, 2377909678521974786, 288231553845202952, 4755804513766703140,
	1189091039659442178, 2882444636448620674, 1159817710264131588, 9224075793020747904,
	2306124501655488514, 9262215602163023944, 583779660044174337, 72620561181771842,
	9331463100838182976, 4908925243642351744, 5768619641500925968, 5188288058109202433,
	9373259111287760898, 288793878008692738, 612493947385825424, 5190699837389046020,
	10484450312000143392, 432380767931204224, 2666166165923954816, 578721494243344400,
	793196527322399760, 4621256176226010128, 4611969984493596680, 189152292451139748,
	2594143763261554825, 144185694263185416, 6917810640107094032, 144255994359187457,
	4904983082370601032, 2307532170492661764, 9223373171867004946, 16285593841954717988,
	126101339863285770, 4611756524878970883, 288793876936917008, 155392054778789896,
	182397983998885952, 585470150648561792, 13835060288942243841, 72128239824666628,
	10376363912353296512, 72127963320025152, 513832707442082944, 2625616175077294208,
	1301681046978822784, 216313536782139520, 10522238325476098176, 1159817645076251008,
	4612322646398607874, 14123306577672814593, 578194686972280913, 207447195409190913,
	324822814749099010, 1153765946717372929, 9799835022811791492, 1226109407608447234,
}

var rookShifts = [SqLength]uint{
	52, 53, 53, 53, 53, 53, 53, 52,
	53, 54, 54, 54, 54, 54, 54, 53,
	53, 54, 54, 54, 54, 54, 54, 53,
	53, 54, 54, 54, 54, 54, 54, 53,
	53, 54, 54, 54, 54, 54, 54, 53,
	53, 54, 54, 54, 54, 54, 54, 53,
	53, 54, 54, 54, 54, 54, 54, 53,
	52, 53, 53, 53, 53, 53, 53, 52,
}

var bishopMagics = [SqLength]uint64{
	1443412546467005456, 2603089383137771522, 9224506735220278304, 3474538176891715585,
	11601571982684463114, 4613111020465459344, 433058082260911105, 9511639830956871712,
	180430150444384772, 288553804507714368, 400838044997005440, 144405597662478464,
	2614343999485411363, 2449958816033820688, 9223939668594133024, 144120137086291992,
	2386925429187444880, 2310443401567043968, 5585589446570541065, 1592023035248904212,
	193799936702152736, 9223512778648584456, 2324033333887524872, 576495992526934080,
	4847034335964430608, 614776533994768915, 144679238086688896, 2314868901374083204,
	11529498720135578640, 378584953958465664, 2882871384403628096, 4918001728785254401,
	288548204018926651, 2344202873963448840, 288797870483310593, 649646447487615104,
	162130136878678048, 2317111959721873473, 1229487167722553472, 4622948403009167873,
	4648287248754804737, 72172029415003176, 216454532540928002, 81652757408252417,
	9224506737153803268, 585472367122188304, 9297683664459023424, 166633740712280336,
	9229080735662475266, 2882339530072985601, 2305985946833158184, 4647785459614236688,
	153122456603870336, 288476821929984640, 1450515326209949697, 5189281538956723264,
	5188710012809396737, 4918098198443069460, 2306968909724649480, 216736625429584898,
	1225190754767539202, 9512728356132487296, 4613973561235865728, 145276581597708416,
}

var bishopShifts = [SqLength]uint{
	58, 59, 59, 59, 59, 59, 59, 58,
	59, 59, 59, 59, 59, 59, 59, 59,
	59, 59, 57, 57, 57, 57, 59, 59,
	59, 59, 57, 55, 55, 57, 59, 59,
	59, 59, 57, 55, 55, 57, 59, 59,
	59, 59, 57, 57, 57, 57, 59, 59,
	59, 59, 59, 59, 59, 59, 59, 59,
	58, 59, 59, 59, 59, 59, 59, 58,
}

// rookTable / bishopTable hold, per square, a slice indexed by the magic
// index and filled with the true sliding-attack bitboard for every subset
// of that square's relevant mask.
var rookTable [SqLength][]Bitboard
var bishopTable [SqLength][]Bitboard

func init() {
	for sq := SqA1; sq < SqNone; sq++ {
		rookTable[sq] = buildMagicTable(sq, relevantMask(sq, rookDirs), rookMagics[sq], rookShifts[sq], rookDirs)
		bishopTable[sq] = buildMagicTable(sq, relevantMask(sq, bishopDirs), bishopMagics[sq], bishopShifts[sq], bishopDirs)
	}
}

// buildMagicTable enumerates every subset of mask (every possible blocker
// configuration on the relevant squares), computes its true ray-traced
// sliding attack set and stores it at the magic index
func buildMagicTable(sq Square, mask Bitboard, magic uint64, shift uint, dirs [4]Direction) []Bitboard {
	size := 1 << (64 - shift)
	table := make([]Bitboard, size)
	var subset Bitboard
	for {
		index := (uint64(subset) * magic) >> shift
		table[index] = slidingAttacks(sq, subset, dirs)
		// Carry-Rippler trick: enumerate all subsets of mask.
		subset = (subset - mask) & mask
		if subset == 0 {
			break
		}
	}
	return table
}

// RookAttacksBb returns the rook attack set from sq given full board
// occupancy, via the magic index.
func RookAttacksBb(sq Square, occupied Bitboard) Bitboard {
	masked := occupied & RookRelevantMask[sq]
	index := (uint64(masked) * rookMagics[sq]) >> rookShifts[sq]
	return rookTable[sq][index]
}

// BishopAttacksBb returns the bishop attack set from sq given full board
// occupancy, via the magic index.
func BishopAttacksBb(sq Square, occupied Bitboard) Bitboard {
	masked := occupied & BishopRelevantMask[sq]
	index := (uint64(masked) * bishopMagics[sq]) >> bishopShifts[sq]
	return bishopTable[sq][index]
}

// QueenAttacksBb returns the queen attack set from sq: the union of the
// rook and bishop attack sets.
func QueenAttacksBb(sq Square, occupied Bitboard) Bitboard {
	return RookAttacksBb(sq, occupied) | BishopAttacksBb(sq, occupied)
}

// AttacksBb dispatches to the correct slider/leaper table for pt. King and
// knight attacks ignore occupancy; pawns are handled separately by callers
// via PawnAttacks since they depend on color.
func AttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return KnightAttacks[sq]
	case King:
		return KingAttacks[sq]
	case Rook:
		return RookAttacksBb(sq, occupied)
	case Bishop:
		return BishopAttacksBb(sq, occupied)
	case Queen:
		return QueenAttacksBb(sq, occupied)
	default:
		return 0
	}
}
