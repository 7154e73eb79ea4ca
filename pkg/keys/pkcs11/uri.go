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

// Package pkcs11 lets an onboarding transaction be signed with a key held
// in a PKCS#11 token (HSM or smartcard). The private key never leaves the
// token; the library only drives it through crypto11.
package pkcs11

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// URI is the subset of an RFC 7512 PKCS#11 URI the onboarding flow needs:
// token and key selection in the path, PIN and module location in the
// query.
type URI struct {
	path  map[string]string
	query map[string]string
}

// ParseURI parses a pkcs11: URI string.
func ParseURI(uri string) (*URI, error) {
	if !strings.HasPrefix(uri, "pkcs11:") {
		return nil, fmt.Errorf("malformed pkcs11 URI: missing 'pkcs11:' prefix: %s", uri)
	}

	p := &URI{path: map[string]string{}, query: map[string]string{}}
	remainder := strings.TrimPrefix(uri, "pkcs11:")
	parts := strings.SplitN(remainder, "?", 2)

	if parts[0] != "" {
		if err := parseAttributes(p.path, parts[0], ";"); err != nil {
			return nil, err
		}
	}
	if len(parts) == 2 {
		if err := parseAttributes(p.query, parts[1], "&"); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func parseAttributes(into map[string]string, s, sep string) error {
	for _, part := range strings.Split(s, sep) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return fmt.Errorf("malformed pkcs11 URI: attribute %q has no value", part)
		}
		decoded, err := url.QueryUnescape(kv[1])
		if err != nil {
			return fmt.Errorf("failed to decode attribute %s: %w", kv[0], err)
		}
		into[kv[0]] = decoded
	}
	return nil
}

// TokenLabel returns the token label selecting the PKCS#11 token.
func (p *URI) TokenLabel() string {
	return p.path["token"]
}

// KeySelector returns the key id bytes and object label used to find the
// key pair inside the token. Either may be empty, but not both.
func (p *URI) KeySelector() (id []byte, label string, err error) {
	if raw, ok := p.path["id"]; ok {
		id = []byte(raw)
	}
	label = p.path["object"]
	if len(id) == 0 && label == "" {
		return nil, "", fmt.Errorf("pkcs11 URI selects no key: need an 'id' or 'object' attribute")
	}
	return id, label, nil
}

// PIN returns the token PIN: the pin-value query attribute when present,
// otherwise the PKCS11_PIN environment variable.
func (p *URI) PIN() string {
	if pin, ok := p.query["pin-value"]; ok {
		return pin
	}
	return os.Getenv("PKCS11_PIN")
}

// ModulePath resolves the PKCS#11 module library to load. The module-path
// query attribute wins; otherwise the candidate directories are searched
// for the named or first available module.
func (p *URI) ModulePath(searchDirs []string) (string, error) {
	if path, ok := p.query["module-path"]; ok {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("pkcs11 module %s not accessible: %w", path, err)
		}
		return path, nil
	}

	moduleName := p.query["module-name"]
	for _, dir := range searchDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if !strings.HasSuffix(name, ".so") && !strings.HasSuffix(name, ".dylib") {
				continue
			}
			if moduleName == "" || strings.Contains(name, moduleName) {
				return filepath.Join(dir, name), nil
			}
		}
	}
	return "", fmt.Errorf("no pkcs11 module found in %v", searchDirs)
}
