// Package iocscan flags indicators of compromise inside parsed package
// manifests: URLs pointing at blocklisted hosts, and base64 blobs that
// decode to such URLs. It is a stateless lookup layer over a static
// blocklist; it never modifies the manifest.
package iocscan

import (
	"encoding/base64"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Finding reports one suspicious value inside a manifest.
type Finding struct {
	// Path locates the value, e.g. "scripts.postinstall" or "keywords[2]".
	Path string `json:"path"`
	// Value is the offending string as it appears in the manifest.
	Value string `json:"value"`
	// Reason describes why the value was flagged.
	Reason string `json:"reason"`
}

// Blocklist is a static set of known-bad hosts and URLs.
type Blocklist struct {
	domains map[string]struct{}
	urls    map[string]struct{}
}

// blocklistFile is the YAML shape of a blocklist on disk.
type blocklistFile struct {
	Domains []string `yaml:"domains"`
	URLs    []string `yaml:"urls"`
}

// New builds a blocklist from host and URL lists. Hosts match exactly and as
// parent domains: blocking "evil.test" also blocks "cdn.evil.test".
func New(domains, urls []string) *Blocklist {
	b := &Blocklist{
		domains: make(map[string]struct{}, len(domains)),
		urls:    make(map[string]struct{}, len(urls)),
	}
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			b.domains[d] = struct{}{}
		}
	}
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u != "" {
			b.urls[u] = struct{}{}
		}
	}
	return b
}

// Load reads a YAML blocklist file with top-level "domains" and "urls" lists.
func Load(path string) (*Blocklist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read blocklist: %w", err)
	}
	var file blocklistFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse blocklist %s: %w", path, err)
	}
	return New(file.Domains, file.URLs), nil
}

var (
	urlRe    = regexp.MustCompile(`https?://[^\s"'<>` + "`" + `]+`)
	base64Re = regexp.MustCompile(`[A-Za-z0-9+/]{24,}={0,2}`)
)

// Scan walks a parsed JSON value and returns a finding for every string that
// contains a blocklisted URL, a URL on a blocklisted host, or a base64 blob
// decoding to one.
func (b *Blocklist) Scan(value any) []Finding {
	var findings []Finding
	b.walk(value, nil, &findings)
	return findings
}

func (b *Blocklist) walk(value any, path []string, findings *[]Finding) {
	switch v := value.(type) {
	case string:
		b.scanString(v, path, findings)
	case map[string]any:
		for key, child := range v {
			b.walk(child, append(path, key), findings)
		}
	case []any:
		for i, child := range v {
			b.walk(child, append(path, fmt.Sprintf("[%d]", i)), findings)
		}
	}
}

func (b *Blocklist) scanString(s string, path []string, findings *[]Finding) {
	for _, raw := range urlRe.FindAllString(s, -1) {
		if reason, bad := b.checkURL(raw); bad {
			*findings = append(*findings, Finding{Path: joinPath(path), Value: raw, Reason: reason})
		}
	}
	for _, blob := range base64Re.FindAllString(s, -1) {
		decoded, err := base64.StdEncoding.DecodeString(blob)
		if err != nil {
			decoded, err = base64.RawStdEncoding.DecodeString(blob)
		}
		if err != nil {
			continue
		}
		for _, raw := range urlRe.FindAllString(string(decoded), -1) {
			if reason, bad := b.checkURL(raw); bad {
				*findings = append(*findings, Finding{
					Path:   joinPath(path),
					Value:  blob,
					Reason: "base64-encoded " + reason + ": " + raw,
				})
			}
		}
	}
}

func (b *Blocklist) checkURL(raw string) (string, bool) {
	if _, ok := b.urls[raw]; ok {
		return "blocklisted URL", true
	}
	host := hostOf(raw)
	if host == "" {
		return "", false
	}
	if _, ok := b.domains[host]; ok {
		return "blocklisted domain " + host, true
	}
	for d := range b.domains {
		if strings.HasSuffix(host, "."+d) {
			return "blocklisted domain " + d, true
		}
	}
	return "", false
}

// hostOf extracts the lowercase host from a URL, dropping any port, path,
// query, or credentials.
func hostOf(raw string) string {
	rest := strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if at := strings.IndexByte(rest, '@'); at >= 0 {
		rest = rest[at+1:]
	}
	for _, sep := range []byte{'/', '?', '#', ':'} {
		if i := strings.IndexByte(rest, sep); i >= 0 {
			rest = rest[:i]
		}
	}
	return strings.ToLower(rest)
}

// joinPath renders a JSON path, dotting keys and attaching array indices,
// e.g. ["scripts", "postinstall"] -> "scripts.postinstall".
func joinPath(path []string) string {
	if len(path) == 0 {
		return ""
	}
	result := path[0]
	for i := 1; i < len(path); i++ {
		if strings.HasPrefix(path[i], "[") {
			result += path[i]
			continue
		}
		result += "." + path[i]
	}
	return result
}
