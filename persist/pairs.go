package persist

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/homology/pairs"
)

// WritePairsASCII writes a finite-pair count line, one "birth death" line
// per pair, an essential-class count line, then one index per line.
func WritePairsASCII(w io.Writer, p pairs.Pairs) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, len(p.Pairs)); err != nil {
		return err
	}
	for _, pr := range p.Pairs {
		if _, err := fmt.Fprintf(bw, "%d %d\n", pr.Birth, pr.Death); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw, len(p.Essential)); err != nil {
		return err
	}
	for _, e := range p.Essential {
		if _, err := fmt.Fprintln(bw, e); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadPairsASCII reads the format WritePairsASCII produces.
func ReadPairsASCII(r io.Reader) (pairs.Pairs, error) {
	sc := bufio.NewScanner(r)
	readInt := func(what string) (int, error) {
		if !sc.Scan() {
			return 0, fmt.Errorf("persist: %s: %w", what, ErrMalformed)
		}
		n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err != nil {
			return 0, fmt.Errorf("persist: %s %q: %w", what, sc.Text(), ErrMalformed)
		}
		return n, nil
	}

	var out pairs.Pairs
	numPairs, err := readInt("pair count")
	if err != nil {
		return out, err
	}
	out.Pairs = make([]pairs.Pair, numPairs)
	for i := 0; i < numPairs; i++ {
		if !sc.Scan() {
			return out, fmt.Errorf("persist: pair %d: %w", i, ErrMalformed)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			return out, fmt.Errorf("persist: pair %d: %q: %w", i, sc.Text(), ErrMalformed)
		}
		b, err1 := strconv.ParseInt(fields[0], 10, 64)
		d, err2 := strconv.ParseInt(fields[1], 10, 64)
		if err1 != nil || err2 != nil {
			return out, fmt.Errorf("persist: pair %d: %q: %w", i, sc.Text(), ErrMalformed)
		}
		out.Pairs[i] = pairs.Pair{Birth: b, Death: d}
	}

	numEssential, err := readInt("essential count")
	if err != nil {
		return out, err
	}
	out.Essential = make([]int64, numEssential)
	for i := 0; i < numEssential; i++ {
		if !sc.Scan() {
			return out, fmt.Errorf("persist: essential %d: %w", i, ErrMalformed)
		}
		v, err := strconv.ParseInt(strings.TrimSpace(sc.Text()), 10, 64)
		if err != nil {
			return out, fmt.Errorf("persist: essential %d: %q: %w", i, sc.Text(), ErrMalformed)
		}
		out.Essential[i] = v
	}
	return out, sc.Err()
}

// WritePairsBinary writes pairs in the same little-endian layout binary.go
// uses for matrices: magic, pair count, (birth, death) per pair, essential
// count, then the essential indices.
func WritePairsBinary(w io.Writer, p pairs.Pairs) error {
	if err := binary.Write(w, binary.LittleEndian, binaryMagic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int64(len(p.Pairs))); err != nil {
		return err
	}
	for _, pr := range p.Pairs {
		if err := binary.Write(w, binary.LittleEndian, pr.Birth); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, pr.Death); err != nil {
			return err
		}
	}
	if err := binary.Write(w, binary.LittleEndian, int64(len(p.Essential))); err != nil {
		return err
	}
	if len(p.Essential) > 0 {
		if err := binary.Write(w, binary.LittleEndian, p.Essential); err != nil {
			return err
		}
	}
	return nil
}

// ReadPairsBinary reads the format WritePairsBinary produces.
func ReadPairsBinary(r io.Reader) (pairs.Pairs, error) {
	var magic uint64
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return pairs.Pairs{}, err
	}
	if magic != binaryMagic {
		return pairs.Pairs{}, fmt.Errorf("persist: bad magic: %w", ErrMalformed)
	}
	var numPairs int64
	if err := binary.Read(r, binary.LittleEndian, &numPairs); err != nil {
		return pairs.Pairs{}, err
	}
	out := pairs.Pairs{Pairs: make([]pairs.Pair, numPairs)}
	for i := int64(0); i < numPairs; i++ {
		if err := binary.Read(r, binary.LittleEndian, &out.Pairs[i].Birth); err != nil {
			return pairs.Pairs{}, err
		}
		if err := binary.Read(r, binary.LittleEndian, &out.Pairs[i].Death); err != nil {
			return pairs.Pairs{}, err
		}
	}
	var numEssential int64
	if err := binary.Read(r, binary.LittleEndian, &numEssential); err != nil {
		return pairs.Pairs{}, err
	}
	out.Essential = make([]int64, numEssential)
	if numEssential > 0 {
		if err := binary.Read(r, binary.LittleEndian, out.Essential); err != nil {
			return pairs.Pairs{}, err
		}
	}
	return out, nil
}
