// Command sign reproduces the reference signer CLI: it loads a PEM
// EC private key, hashes a message file with SHA-256, signs the
// digest, and appends the raw (r, s) signature to an output file.
package main

import (
	"fmt"
	"os"

	"p256coz.dev/hashfile"
	"p256coz.dev/signer"
)

func printInstructions() {
	fmt.Fprintln(os.Stderr, "Arguments are:")
	fmt.Fprintln(os.Stderr, "  #1: private key filename")
	fmt.Fprintln(os.Stderr, "  #2: message filename")
	fmt.Fprintln(os.Stderr, "  #3: signature filename")
}

func printError(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

func main() {
	if len(os.Args) != 4 {
		printError("Arguments are missing")
		printInstructions()
		os.Exit(1)
	}
	privkeyFilename := os.Args[1]
	msgFilename := os.Args[2]
	sigFilename := os.Args[3]

	key, err := signer.LoadPrivateKey(privkeyFilename)
	if err != nil {
		printError("Error reading the private key from file: " + err.Error())
		os.Exit(1)
	}

	digest, err := hashfile.SHA256(msgFilename)
	if err != nil {
		printError("Error: hash of the message cannot be done: " + err.Error())
		os.Exit(1)
	}

	sig, err := signer.Sign(key, digest)
	if err != nil {
		printError("Error during signature: " + err.Error())
		os.Exit(1)
	}

	out, err := os.OpenFile(sigFilename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		printError("Error opening signature file: " + err.Error())
		os.Exit(1)
	}
	defer out.Close()

	if _, err := out.Write(sig.Bytes()); err != nil {
		printError("Error writing signature: " + err.Error())
		os.Exit(1)
	}
}
