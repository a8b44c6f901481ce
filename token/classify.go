package token

// Classifier maps an accumulated word to a token type and its canonical
// content. ok is false when the word is not in the classifier's table.
type Classifier func(word string) (typ Type, content string, ok bool)

// wordClassifiers are tried in order; the first match wins.
var wordClassifiers = []Classifier{
	classifyKeyword,
	classifyTypeName,
	classifyLiteral,
}

func classifyKeyword(word string) (Type, string, bool) {
	k, ok := LookupKeyword(word)
	if !ok {
		return nil, "", false
	}
	return k, k.String(), true
}

func classifyTypeName(word string) (Type, string, bool) {
	t, ok := LookupTypeName(word)
	if !ok {
		return nil, "", false
	}
	return t, t.String(), true
}

func classifyLiteral(word string) (Type, string, bool) {
	l, content, ok := LookupLiteral(word)
	if !ok {
		return nil, "", false
	}
	return l, content, true
}

// ClassifyWord resolves a run of letters and underscores. Keywords take
// priority over type names, which take priority over literal keywords.
// Anything else is an [Identifier] with the word as content.
func ClassifyWord(word string) (Type, string) {
	for _, classify := range wordClassifiers {
		if typ, content, ok := classify(word); ok {
			return typ, content
		}
	}
	return Identifier, word
}
