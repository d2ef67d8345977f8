package token

import (
	"sync"

	"github.com/sqldef/dtcast/catalog"
)

// trieNode is one node of the element-literal trie. Keyed on upper-cased
// ASCII bytes, since the vocabulary of recognized element strings is
// pure ASCII, so the trie can store only upper-case keys.
type trieNode struct {
	children [256]*trieNode
	terminal bool
	typ      catalog.Type
}

// vocabulary lists every non-literal, non-whitespace element type whose
// canonical string form doubles as its trie key (catalog.Type values are
// already the canonical upper-case spelling).
var vocabulary = []catalog.Type{
	catalog.TypeYYYY, catalog.TypeYYY, catalog.TypeYY, catalog.TypeY,
	catalog.TypeRRRR, catalog.TypeRR,
	catalog.TypeYCommaYYY,
	catalog.TypeIYYY, catalog.TypeIYY, catalog.TypeIY, catalog.TypeI,
	catalog.TypeSYYYY, catalog.TypeYEAR, catalog.TypeSYEAR,
	catalog.TypeMM, catalog.TypeMON, catalog.TypeMONTH, catalog.TypeRM,
	catalog.TypeDDD, catalog.TypeDD, catalog.TypeD, catalog.TypeDAY, catalog.TypeDY, catalog.TypeJ,
	catalog.TypeHH, catalog.TypeHH12, catalog.TypeHH24,
	catalog.TypeMI,
	catalog.TypeSS, catalog.TypeSSSSS,
	catalog.TypeFF1, catalog.TypeFF2, catalog.TypeFF3, catalog.TypeFF4, catalog.TypeFF5,
	catalog.TypeFF6, catalog.TypeFF7, catalog.TypeFF8, catalog.TypeFF9,
	catalog.TypeAM, catalog.TypePM, catalog.TypeAMDot, catalog.TypePMDot,
	catalog.TypeTZH, catalog.TypeTZM,
	catalog.TypeCC, catalog.TypeSCC,
	catalog.TypeQ,
	catalog.TypeIW, catalog.TypeWW, catalog.TypeW,
	catalog.TypeAD, catalog.TypeBC, catalog.TypeADDot, catalog.TypeBCDot,
	catalog.TypeSP, catalog.TypeTH, catalog.TypeSPTH, catalog.TypeTHSP,
	catalog.TypeFM,
}

// simpleLiteralBytes are the seven punctuation characters recognized as
// one-byte SimpleLiteral triggers when no longer trie match applies.
const simpleLiteralBytes = "-./,';:"

var (
	trieOnce sync.Once
	trieRoot *trieNode
)

func buildTrie() {
	trieRoot = &trieNode{}
	for _, t := range vocabulary {
		insert(trieRoot, string(t), t)
	}
}

func insert(root *trieNode, key string, t catalog.Type) {
	n := root
	for i := 0; i < len(key); i++ {
		b := key[i]
		if n.children[b] == nil {
			n.children[b] = &trieNode{}
		}
		n = n.children[b]
	}
	n.terminal = true
	n.typ = t
}

// getTrie returns the shared, process-wide immutable trie, building it
// on first use. Safe for concurrent first touch.
func getTrie() *trieNode {
	trieOnce.Do(buildTrie)
	return trieRoot
}

// longestMatch performs the maximal-munch lookup starting at upper[pos:].
// It returns the matched type and the number of bytes consumed, or
// ok=false if no trie entry matches at pos.
func longestMatch(upper []byte, pos int) (t catalog.Type, length int, ok bool) {
	root := getTrie()
	n := root
	bestLen := 0
	var bestType catalog.Type
	for i := pos; i < len(upper); i++ {
		n = n.children[upper[i]]
		if n == nil {
			break
		}
		if n.terminal {
			bestLen = i - pos + 1
			bestType = n.typ
		}
	}
	if bestLen == 0 {
		return "", 0, false
	}
	return bestType, bestLen, true
}

func isSimpleLiteralByte(b byte) bool {
	for i := 0; i < len(simpleLiteralBytes); i++ {
		if simpleLiteralBytes[i] == b {
			return true
		}
	}
	return false
}
