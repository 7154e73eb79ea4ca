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

// Package transaction provides the typed in-memory transaction document and
// its canonical serialization.
//
// A Document is assembled incrementally (identity stream, output streams,
// metadata), then frozen into the canonical signing payload. The document
// itself never carries a signature; signing produces an immutable
// SignedTransaction, and a different signature means building a new one.
package transaction

import "sort"

// Well-known contract classes and stream metadata keys of the ledger's
// transaction schema.
const (
	// OnboardContract is the transaction class that registers a new
	// identity and its public key on the ledger.
	OnboardContract = "onboard"

	// MetaKeyType is the stream metadata key carrying the algorithm tag.
	MetaKeyType = "type"

	// MetaKeyPublicKey is the stream metadata key carrying the encoded
	// public key of the identity being onboarded.
	MetaKeyPublicKey = "publicKey"
)

// Stream is a reference to a ledger data stream participating in a
// transaction. The alias keys the stream in the document's $i/$o sections;
// the stream id may be empty for a stream that does not exist yet, which is
// always the case for the identity stream of an onboarding transaction.
type Stream struct {
	Alias    string
	StreamID string
	Metadata map[string]string
}

// stream is the document-internal representation. Metadata is copied on the
// way in and out so callers cannot mutate a document through a retained map.
type stream struct {
	alias    string
	streamID string
	metadata map[string]string
}

// Document is the in-memory transaction being assembled. Input and output
// streams keep insertion order; that order is part of the canonical signing
// payload.
type Document struct {
	namespace string
	contract  string
	selfsign  bool
	inputs    []stream
	outputs   []stream
	metadata  map[string]string
}

// NewOnboarding initializes an empty document tagged for the onboarding
// transaction class in the given namespace. Onboarding documents are
// self-signed: the signature is produced by the very key the transaction
// registers.
func NewOnboarding(namespace string) *Document {
	return &Document{
		namespace: namespace,
		contract:  OnboardContract,
		selfsign:  true,
		metadata:  make(map[string]string),
	}
}

// Namespace returns the document's namespace.
func (d *Document) Namespace() string {
	return d.namespace
}

// Contract returns the document's transaction class.
func (d *Document) Contract() string {
	return d.contract
}

// SelfSigned reports whether the document is signed by the key it onboards.
func (d *Document) SelfSigned() bool {
	return d.selfsign
}

// SetSelfStream inserts the single identity input stream, keyed by alias,
// with metadata carrying the encoded public key and its algorithm tag.
//
// The policy for repeated calls is strict: a second call fails with a
// DuplicateStreamAlias error rather than overwriting. Silently replacing
// the stream would risk onboarding a different key than the caller thinks
// it registered.
func (d *Document) SetSelfStream(alias, publicKeyPEM, algorithmTag string) error {
	if len(d.inputs) > 0 {
		return duplicateStreamAlias(d.inputs[0].alias, "input")
	}
	d.inputs = append(d.inputs, stream{
		alias: alias,
		metadata: map[string]string{
			MetaKeyType:      algorithmTag,
			MetaKeyPublicKey: publicKeyPEM,
		},
	})
	return nil
}

// AddOutputStream appends an output stream. Aliases must be unique among
// output streams; a collision fails with a DuplicateStreamAlias error
// naming the alias.
func (d *Document) AddOutputStream(alias string, metadata map[string]string) error {
	for _, s := range d.outputs {
		if s.alias == alias {
			return duplicateStreamAlias(alias, "output")
		}
	}
	d.outputs = append(d.outputs, stream{alias: alias, metadata: copyMetadata(metadata)})
	return nil
}

// SetMetadata sets a top-level transaction metadata entry, overwriting any
// previous value for the key.
func (d *Document) SetMetadata(key, value string) {
	d.metadata[key] = value
}

// InputStreams returns the input streams in insertion order. The returned
// slice and metadata maps are copies.
func (d *Document) InputStreams() []Stream {
	return exportStreams(d.inputs)
}

// OutputStreams returns the output streams in insertion order. The returned
// slice and metadata maps are copies.
func (d *Document) OutputStreams() []Stream {
	return exportStreams(d.outputs)
}

// Metadata returns a copy of the top-level metadata.
func (d *Document) Metadata() map[string]string {
	return copyMetadata(d.metadata)
}

func exportStreams(in []stream) []Stream {
	out := make([]Stream, len(in))
	for i, s := range in {
		out[i] = Stream{Alias: s.alias, StreamID: s.streamID, Metadata: copyMetadata(s.metadata)}
	}
	return out
}

func copyMetadata(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// sortedKeys returns the map's keys in lexicographic order.
func sortedKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
