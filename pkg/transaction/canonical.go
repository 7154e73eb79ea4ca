// Copyright 2025 The Activeledger Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transaction

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Canonical serialization.
//
// The signing payload must be reproducible byte-for-byte by every node in
// the network, so the key order is fixed here instead of being left to a
// JSON library (whose map ordering is unspecified): $namespace, then
// $contract, then $i with streams in insertion order, then $o, then $meta.
// Within a stream: $stream id first when present, then metadata keys
// sorted. $i, $o, $meta and stream metadata are always emitted, as {} when
// empty, so the schema shape is stable across transactions. The signature
// key is omitted entirely from the payload, not emitted as null.

// Signature is the signature object installed into a finalized transaction:
// the identity stream alias the signature belongs to, the algorithm tag the
// verifier must use, and the encoded signature bytes.
type Signature struct {
	// Identity is the alias of the input stream whose key produced the
	// signature.
	Identity string

	// Algorithm is the signing algorithm tag.
	Algorithm string

	// Signature is the base64-encoded signature bytes.
	Signature string
}

// SignedTransaction is the terminal artifact handed to the network
// transport: the canonical document bytes with the signature object
// appended as the last top-level key. It is immutable; producing a
// different signature means building a new document.
type SignedTransaction struct {
	payload   []byte
	signature Signature
	raw       []byte
}

// Canonicalize freezes the document into its canonical signing payload.
// Fails with an IncompleteTransaction error when the document has no input
// stream. The function is pure: the same document always produces
// byte-identical output.
func (d *Document) Canonicalize() ([]byte, error) {
	if len(d.inputs) == 0 {
		return nil, incompleteTransaction()
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	writeStringField(&buf, "$namespace", d.namespace)
	buf.WriteByte(',')
	writeStringField(&buf, "$contract", d.contract)
	buf.WriteByte(',')
	writeJSONString(&buf, "$i")
	buf.WriteByte(':')
	writeStreamSection(&buf, d.inputs)
	buf.WriteByte(',')
	writeJSONString(&buf, "$o")
	buf.WriteByte(':')
	writeStreamSection(&buf, d.outputs)
	buf.WriteByte(',')
	writeJSONString(&buf, "$meta")
	buf.WriteByte(':')
	writeSortedObject(&buf, d.metadata)
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Finalize re-serializes the document with the signature appended as the
// last top-level key and returns the immutable signed transaction. The
// signature's identity must name an input stream of the document; the
// non-signature bytes are exactly the Canonicalize output, which is what
// makes the signature re-verifiable from the transmitted document alone.
func (d *Document) Finalize(sig Signature) (*SignedTransaction, error) {
	if sig.Signature == "" {
		return nil, fmt.Errorf("cannot finalize with an empty signature")
	}
	if !d.hasInputAlias(sig.Identity) {
		return nil, fmt.Errorf("signature identity %q does not match any input stream", sig.Identity)
	}

	payload, err := d.Canonicalize()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(payload) + len(sig.Signature) + 64)
	// Splice $sigs in before the closing brace of the payload.
	buf.Write(payload[:len(payload)-1])
	buf.WriteByte(',')
	writeJSONString(&buf, "$sigs")
	buf.WriteString(":{")
	writeStringField(&buf, "$identity", sig.Identity)
	buf.WriteByte(',')
	writeStringField(&buf, "$alg", sig.Algorithm)
	buf.WriteByte(',')
	writeStringField(&buf, "$sig", sig.Signature)
	buf.WriteString("}}")

	return &SignedTransaction{payload: payload, signature: sig, raw: buf.Bytes()}, nil
}

func (d *Document) hasInputAlias(alias string) bool {
	for _, s := range d.inputs {
		if s.alias == alias {
			return true
		}
	}
	return false
}

// Bytes returns the transaction document bytes to hand to the transport.
func (t *SignedTransaction) Bytes() []byte {
	return append([]byte(nil), t.raw...)
}

// String returns the transaction document as a string.
func (t *SignedTransaction) String() string {
	return string(t.raw)
}

// Signature returns the installed signature object.
func (t *SignedTransaction) Signature() Signature {
	return t.signature
}

// StripSignature returns the canonical signing payload the signature was
// computed over, exactly as Canonicalize produced it. Verifiers re-derive
// this from the transmitted document.
func (t *SignedTransaction) StripSignature() []byte {
	return append([]byte(nil), t.payload...)
}

// writeStreamSection emits streams as an object keyed by alias, insertion
// order preserved.
func writeStreamSection(buf *bytes.Buffer, streams []stream) {
	buf.WriteByte('{')
	for i, s := range streams {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(buf, s.alias)
		buf.WriteString(":{")
		first := true
		if s.streamID != "" {
			writeStringField(buf, "$stream", s.streamID)
			first = false
		}
		for _, k := range sortedKeys(s.metadata) {
			if !first {
				buf.WriteByte(',')
			}
			writeStringField(buf, k, s.metadata[k])
			first = false
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
}

// writeSortedObject emits a string map as an object with keys sorted.
func writeSortedObject(buf *bytes.Buffer, m map[string]string) {
	buf.WriteByte('{')
	for i, k := range sortedKeys(m) {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeStringField(buf, k, m[k])
	}
	buf.WriteByte('}')
}

func writeStringField(buf *bytes.Buffer, key, value string) {
	writeJSONString(buf, key)
	buf.WriteByte(':')
	writeJSONString(buf, value)
}

// writeJSONString writes s as a JSON string. json.Marshal is used only for
// escaping; it cannot fail for a string value.
func writeJSONString(buf *bytes.Buffer, s string) {
	encoded, err := json.Marshal(s)
	if err != nil {
		// Unreachable for string inputs; keep the payload well formed.
		buf.WriteString(`""`)
		return
	}
	buf.Write(encoded)
}
