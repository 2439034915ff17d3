// Command ladder-harness drives the scalar-multiplication engine
// from the command line, mirroring the reference fuzzing harness's
// main(): it takes one hex-encoded scalar argument, computes [k]G
// with both ladder implementations, and appends a CSV line
// "scalar,x,y" to output.txt for each. The co-Z line is written only
// when the scalar lies in the co-Z ladder's domain.
package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"

	"p256coz.dev"
)

func fail(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

func main() {
	if len(os.Args) != 2 {
		fail("usage: ladder-harness <hex-scalar>")
	}

	raw, err := hex.DecodeString(os.Args[1])
	if err != nil {
		fail("invalid hex scalar: " + err.Error())
	}
	k := new(big.Int).SetBytes(raw)

	var kBytes [32]byte
	k.FillBytes(kBytes[:])
	for i, j := 0, 31; i < j; i, j = i+1, j-1 {
		kBytes[i], kBytes[j] = kBytes[j], kBytes[i]
	}
	scalar := p256coz.ScalarFromBytes(kBytes)

	out, err := os.OpenFile("output.txt", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fail("cannot open output.txt: " + err.Error())
	}
	defer out.Close()

	jacPoint := p256coz.ScalarMultBaseJac(&scalar)
	fmt.Fprintf(out, "%s,%s,%s\n", os.Args[1], hex.EncodeToString(jacPoint.X[:]), hex.EncodeToString(jacPoint.Y[:]))

	if cozPoint, ok := p256coz.ScalarMultBaseCoZ(&scalar); ok {
		fmt.Fprintf(out, "%s,%s,%s\n", os.Args[1], hex.EncodeToString(cozPoint.X[:]), hex.EncodeToString(cozPoint.Y[:]))
	}
}
