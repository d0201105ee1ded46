/*
 * ponderforge - a UCI chess engine core in Go
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
	. "github.com/ponderforge/ponderforge/internal/types"
)

// zobristHash holds the random constants the Position XORs together to
// maintain an incremental hash signature across make/unmake. It is filled
// once at package init and never mutated afterwards, same as the data
// tables in the types package.
type zobristHash struct {
	pieces         [PieceLength][SqLength]Key
	castlingRights [CastlingRightsLength]Key
	enPassantFile  [8]Key
	nextPlayer     Key
}

var zobristBase zobristHash

// zobristSeed is fixed so that two runs of the engine agree on the same
// hash space; the signature is only ever compared within a single process.
const zobristSeed uint64 = 0x9E3779B97F4A7C15

// initZobrist fills the random constants used for the incremental Zobrist
// signature. Deterministic seeding means the hash space is stable across
// runs of the same binary, which matters for reproducing perft/search
// traces but not for correctness (any well-distributed constants work).
func initZobrist() {
	rand := NewRandom(zobristSeed)
	for pc := PieceNone; pc < PieceLength; pc++ {
		for sq := SqA1; sq < SqLength; sq++ {
			zobristBase.pieces[pc][sq] = Key(rand.Rand64())
		}
	}
	for cr := CastlingRights(0); cr < CastlingRightsLength; cr++ {
		zobristBase.castlingRights[cr] = Key(rand.Rand64())
	}
	for f := 0; f < 8; f++ {
		zobristBase.enPassantFile[f] = Key(rand.Rand64())
	}
	zobristBase.nextPlayer = Key(rand.Rand64())
}
