package field

// Poseidon permutation parameters: Grain-LFSR round constants, a Cauchy
// MDS construction, and sponge absorb/squeeze, fixed to a width-12/rate-8/
// capacity-4 permutation over the native Goldilocks field. Treated as an
// opaque collision-resistant, deterministic, domain-separation-free
// function F^n -> F^4; this permutation satisfies that contract without
// claiming bit-for-bit compatibility with any particular published
// parameter set.
const (
	poseidonWidth         = 12
	poseidonRate          = 8
	poseidonRoundsFull    = 8
	poseidonRoundsPartial = 22
	poseidonSboxPower     = 7
)

var (
	poseidonRoundConstants [poseidonRoundsFull + poseidonRoundsPartial][poseidonWidth]Element
	poseidonMDS            [poseidonWidth][poseidonWidth]Element
)

func init() {
	lfsr := newGrainLFSR()
	totalRounds := poseidonRoundsFull + poseidonRoundsPartial
	for r := 0; r < totalRounds; r++ {
		for i := 0; i < poseidonWidth; i++ {
			poseidonRoundConstants[r][i] = lfsr.nextElement()
		}
	}
	// Cauchy matrix: always MDS (any square submatrix is invertible).
	for i := 0; i < poseidonWidth; i++ {
		for j := 0; j < poseidonWidth; j++ {
			x := New(uint64(i + 1))
			y := New(uint64(j + poseidonWidth + 1))
			poseidonMDS[i][j] = x.Add(y).Inv()
		}
	}
}

func sbox(x Element) Element {
	return x.Exp(poseidonSboxPower)
}

func applyMDS(state [poseidonWidth]Element) [poseidonWidth]Element {
	var out [poseidonWidth]Element
	for i := 0; i < poseidonWidth; i++ {
		acc := Zero
		for j := 0; j < poseidonWidth; j++ {
			acc = acc.Add(state[j].Mul(poseidonMDS[i][j]))
		}
		out[i] = acc
	}
	return out
}

func fullRound(state [poseidonWidth]Element, round int) [poseidonWidth]Element {
	for i := 0; i < poseidonWidth; i++ {
		state[i] = state[i].Add(poseidonRoundConstants[round][i])
		state[i] = sbox(state[i])
	}
	return applyMDS(state)
}

func partialRound(state [poseidonWidth]Element, round int) [poseidonWidth]Element {
	for i := 0; i < poseidonWidth; i++ {
		state[i] = state[i].Add(poseidonRoundConstants[round][i])
	}
	state[0] = sbox(state[0])
	return applyMDS(state)
}

func permute(state [poseidonWidth]Element) [poseidonWidth]Element {
	round := 0
	for i := 0; i < poseidonRoundsFull/2; i++ {
		state = fullRound(state, round)
		round++
	}
	for i := 0; i < poseidonRoundsPartial; i++ {
		state = partialRound(state, round)
		round++
	}
	for i := 0; i < poseidonRoundsFull/2; i++ {
		state = fullRound(state, round)
		round++
	}
	return state
}

// HashSeq computes the variable-length Poseidon hash of a sequence of
// field elements, absorbing `poseidonRate` elements per permutation and
// squeezing a 4-element digest. This is the `Fⁿ → F⁴` primitive every
// other hash in this package builds on.
func HashSeq(inputs []Element) Digest {
	var state [poseidonWidth]Element
	for i := 0; i < len(inputs); i += poseidonRate {
		end := i + poseidonRate
		if end > len(inputs) {
			end = len(inputs)
		}
		for j, in := range inputs[i:end] {
			state[j] = state[j].Add(in)
		}
		state = permute(state)
	}
	// Always apply at least one permutation, including for empty input,
	// so that HashSeq(nil) is a well-defined, non-trivial digest.
	if len(inputs) == 0 {
		state = permute(state)
	}
	return Digest{state[0], state[1], state[2], state[3]}
}

// HashNodes is the Merkle intermediate-node hash: Poseidon over the
// concatenation of the two child digests.
func HashNodes(l, r Digest) Digest {
	return HashSeq(append(append([]Element{}, l.Elements()...), r.Elements()...))
}

// HashLeaf is the Merkle leaf hash: Poseidon over the concatenation of
// the leaf's key and value digests.
func HashLeaf(k, v Digest) Digest {
	return HashSeq(append(append([]Element{}, k.Elements()...), v.Elements()...))
}

// HashStr maps a UTF-8 string to a digest: append a single 0x01 pad byte,
// fold into field elements 7 bytes at a time (big-endian within each
// chunk — a 64-bit limb cannot safely hold 8 bytes of a prime-field
// element), then apply the variable-length Poseidon hash.
func HashStr(s string) Digest {
	data := append([]byte(s), 0x01)
	elems := make([]Element, 0, (len(data)+6)/7)
	for i := 0; i < len(data); i += 7 {
		end := i + 7
		if end > len(data) {
			end = len(data)
		}
		chunk := data[i:end]
		var v uint64
		for _, b := range chunk {
			v = (v << 8) | uint64(b)
		}
		elems = append(elems, New(v))
	}
	return HashSeq(elems)
}

// grainLFSR generates Poseidon round constants deterministically: an
// 80-bit state with a parameter-seeding layout and a discard-first-160-bits
// warmup, emitting native Goldilocks elements.
type grainLFSR struct {
	state [80]bool
}

func newGrainLFSR() *grainLFSR {
	g := &grainLFSR{}
	g.state[0] = true
	g.state[1] = true
	for i := 0; i < 4; i++ {
		g.state[2+i] = (poseidonSboxPower>>uint(i))&1 == 1
	}
	for i := 0; i < 12; i++ {
		g.state[6+i] = (64>>uint(i))&1 == 1
	}
	for i := 0; i < 12; i++ {
		g.state[18+i] = (poseidonWidth>>uint(i))&1 == 1
	}
	for i := 0; i < 10; i++ {
		g.state[30+i] = (poseidonRoundsFull>>uint(i))&1 == 1
	}
	for i := 0; i < 10; i++ {
		g.state[40+i] = (poseidonRoundsPartial>>uint(i))&1 == 1
	}
	for i := 50; i < 80; i++ {
		g.state[i] = true
	}
	for i := 0; i < 160; i++ {
		g.update()
	}
	return g
}

func (g *grainLFSR) update() bool {
	newBit := g.state[62] != g.state[51]
	newBit = newBit != g.state[38]
	newBit = newBit != g.state[23]
	newBit = newBit != g.state[13]
	newBit = newBit != g.state[0]
	copy(g.state[:79], g.state[1:])
	g.state[79] = newBit
	return newBit
}

func (g *grainLFSR) sampleBit() bool {
	for {
		bit1 := g.state[0]
		g.update()
		bit2 := g.state[0]
		g.update()
		if bit1 {
			return bit2
		}
	}
}

func (g *grainLFSR) nextElement() Element {
	var v uint64
	for i := 0; i < 64; i++ {
		if g.sampleBit() {
			v |= 1 << uint(i)
		}
	}
	return New(v)
}
